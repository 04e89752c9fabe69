// Package keepalive pings the service's public URL on a schedule so
// free-tier hosts do not idle it out.
package keepalive

import (
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
)

// Pinger GETs the configured URL every 12 minutes.
type Pinger struct {
	url    string
	client *http.Client
	cron   *cron.Cron
}

// New creates a Pinger for the given URL.
func New(url string) *Pinger {
	return &Pinger{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
		cron:   cron.New(),
	}
}

// Start schedules the ping job. It returns an error only if the schedule
// cannot be registered.
func (p *Pinger) Start() error {
	if _, err := p.cron.AddFunc("*/12 * * * *", p.ping); err != nil {
		return err
	}
	p.cron.Start()
	return nil
}

// Stop cancels the schedule and waits for a running ping to finish.
func (p *Pinger) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
}

func (p *Pinger) ping() {
	resp, err := p.client.Get(p.url)
	if err != nil {
		log.Printf("keepalive request error: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		log.Println("keepalive: API is up and running")
	} else {
		log.Printf("keepalive: API is down (status %d)", resp.StatusCode)
	}
}
