package commands

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"griddle/app/keepalive"
	"griddle/app/routes"
	"griddle/app/storage"
	"griddle/config"

	"github.com/dgraph-io/badger/v4"
)

// HandleCommand handles service subcommands
func HandleCommand(args []string) {
	if len(args) < 1 {
		PrintHelp()
		os.Exit(1)
	}

	cmd := args[0]
	switch cmd {
	case "serve":
		serve()
	case "clean":
		clean()
	case "init":
		initDb()
	case "backup":
		backup()
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(args[1])
	case "help":
		PrintHelp()
	default:
		fmt.Printf("Unknown command: %s\n\n", cmd)
		PrintHelp()
		os.Exit(1)
	}
}

// PrintHelp prints help for the service subcommands
func PrintHelp() {
	helpText := `Usage: griddle <command> [options]

Commands:
  serve                          Run the blog API server
  clean                          Clean the blog database
  init                           Initialize a new empty database
  backup                         Create a backup of the database
  restore [file]                 Restore database from backup
  version                        Show version information
  help                           Display this help message
`
	fmt.Println(helpText)
}

// serve starts the blog API server
func serve() {
	cfg := config.Load()

	// Open or initialize the Badger DB
	opts := badger.DefaultOptions(cfg.DBPath)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	var store storage.AttachmentStore
	if cfg.CloudinaryURL != "" {
		store, err = storage.NewCloudinaryStore(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("Failed to configure Cloudinary: %v", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set; cover image uploads are disabled")
		store = storage.Disabled{}
	}

	if cfg.KeepaliveURL != "" {
		pinger := keepalive.New(cfg.KeepaliveURL)
		if err := pinger.Start(); err != nil {
			log.Fatalf("Failed to start keepalive: %v", err)
		}
		defer pinger.Stop()
	}

	router := routes.SetupRoutes(routes.Options{
		DB:           db,
		Store:        store,
		JWTSecret:    []byte(cfg.JWTSecret),
		UploadFolder: cfg.UploadFolder,
	})

	log.Printf("Starting blog API server on port %s", cfg.Port)
	if err := routes.StartServer(":"+cfg.Port, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// clean removes the database
func clean() {
	dbPath := config.Load().DBPath
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(dbPath); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")
}

// initDb initializes a new empty database
func initDb() {
	dbPath := config.Load().DBPath
	if _, err := os.Stat(dbPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	opts := badger.DefaultOptions(dbPath)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	fmt.Println("Database initialized successfully")
}

// backup creates a backup of the database
func backup() {
	dbPath := config.Load().DBPath
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := filepath.Join(filepath.Dir(dbPath), "backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		log.Fatalf("Failed to create backup directory: %v", err)
	}

	opts := badger.DefaultOptions(dbPath)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		log.Fatalf("Failed to create backup file: %v", err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		log.Fatalf("Failed to backup database: %v", err)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup
func restore(backupFile string) {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	dbPath := config.Load().DBPath
	if _, err := os.Stat(dbPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(dbPath); err != nil {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	opts := badger.DefaultOptions(dbPath)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		log.Fatalf("Failed to open backup file: %v", err)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		log.Fatalf("Failed to restore database: %v", err)
	}

	fmt.Println("Database restored successfully")
}
