package services

import (
	"github.com/notehub/notehub/internal/app/repositories"
	"github.com/notehub/notehub/internal/pkg/blobstore"
	"github.com/notehub/notehub/internal/pkg/identity"
)

// Services holds all the service instances
type Services struct {
	Taxonomy   TaxonomyService
	Submission NoteSubmissionService
	Listing    NoteListingService
	Detail     NoteDetailService
	Session    SessionService
}

// NewServices wires every service to its stores
func NewServices(repos *repositories.Repositories, blobs blobstore.BlobStore, provider identity.Provider) *Services {
	return &Services{
		Taxonomy:   NewTaxonomyService(repos.TaxonomyRepository),
		Submission: NewNoteSubmissionService(repos.NoteRepository, blobs),
		Listing:    NewNoteListingService(repos.NoteRepository),
		Detail:     NewNoteDetailService(repos.NoteRepository, repos.RatingRepository, repos.DownloadRepository, blobs),
		Session:    NewSessionService(provider, repos.ProfileRepository),
	}
}
