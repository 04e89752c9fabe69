package services

import (
	"context"
	"io"

	"griddle/app/models"
	"griddle/app/repositories"
	"griddle/app/storage"
)

// PostInput carries the editable content fields of a post. On edit, empty
// fields mean "leave unchanged".
type PostInput struct {
	Title    string
	Subtitle string
	Content  string
}

// ImageIntent describes what should happen to a post's cover image during a
// create or edit. The zero value leaves the image alone.
type ImageIntent struct {
	kind imageIntentKind
	file io.Reader
	url  string
}

type imageIntentKind int

const (
	imageNoChange imageIntentKind = iota
	imageUploadBinary
	imageUploadFromURL
)

// NoImageChange leaves the cover image fields untouched.
func NoImageChange() ImageIntent {
	return ImageIntent{}
}

// UploadBinary uploads the reader's content as the new cover image.
func UploadBinary(file io.Reader) ImageIntent {
	return ImageIntent{kind: imageUploadBinary, file: file}
}

// UploadFromURL uploads from a remote URL or base64 data URL.
func UploadFromURL(url string) ImageIntent {
	return ImageIntent{kind: imageUploadFromURL, url: url}
}

func (i ImageIntent) isNoChange() bool {
	return i.kind == imageNoChange
}

// Close releases the intent's underlying file, if it holds one. Safe to call
// on any intent.
func (i ImageIntent) Close() {
	if closer, ok := i.file.(io.Closer); ok {
		closer.Close()
	}
}

func (i ImageIntent) source() interface{} {
	if i.kind == imageUploadBinary {
		return i.file
	}
	return i.url
}

// PostService coordinates the post lifecycle with the attachment store:
// upload-then-link on create, replace-then-delete-old on edit, delete-then-
// unlink on delete. The store is never touched by vote or comment logic.
type PostService struct {
	postRepo repositories.PostRepository
	store    storage.AttachmentStore
	folder   string
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, store storage.AttachmentStore, folder string) *PostService {
	return &PostService{
		postRepo: postRepo,
		store:    store,
		folder:   folder,
	}
}

// CreatePost validates and persists a new post. When the intent supplies an
// image the upload happens first; if it fails nothing is persisted.
func (s *PostService) CreatePost(ctx context.Context, input PostInput, intent ImageIntent) (*models.Post, error) {
	post := &models.Post{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Content:  input.Content,
	}
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return nil, err
	}

	if !intent.isNoChange() {
		attachment, err := s.store.Upload(ctx, intent.source(), s.folder)
		if err != nil {
			return nil, err
		}
		post.SetCoverImage(attachment.URL, attachment.PublicID)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost applies field edits and at most one image change. The old
// attachment is deleted before the new upload; if that upload then fails the
// post keeps its previous image fields but the old stored object is already
// gone.
func (s *PostService) EditPost(ctx context.Context, id string, input PostInput, intent ImageIntent) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	post.ApplyEdit(input.Title, input.Content, input.Subtitle)

	// A URL identical to the current cover image is not a change.
	if intent.kind == imageUploadFromURL && intent.url == post.CoverImage {
		intent = NoImageChange()
	}

	if !intent.isNoChange() {
		if post.CoverImageID != "" {
			if err := s.store.Delete(ctx, post.CoverImageID); err != nil {
				return nil, err
			}
		}

		attachment, err := s.store.Upload(ctx, intent.source(), s.folder)
		if err != nil {
			return nil, err
		}
		post.SetCoverImage(attachment.URL, attachment.PublicID)
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost releases the post's attachment, then deletes the record. A
// failed store delete aborts the whole operation.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if post.CoverImageID != "" {
		if err := s.store.Delete(ctx, post.CoverImageID); err != nil {
			return err
		}
	}

	return s.postRepo.Delete(id)
}

// GetPost retrieves a single post by ID
func (s *PostService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// ListPosts retrieves all posts, newest first
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.List()
}
