package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/depeter/shutterfolio/internal/jellyfin"
)

// PhotoLibrary is the part of the Jellyfin client the source needs.
type PhotoLibrary interface {
	GetPhotoAlbums(ctx context.Context, libraryID string) ([]jellyfin.Photo, error)
	GetPhotos(ctx context.Context, album jellyfin.Photo) ([]jellyfin.Photo, error)
	GetPhotoURL(itemID string) string
}

// JellyfinSource builds the project list from a Jellyfin photo library:
// every album is a category and every photo in it a project. Favourited
// photos are featured in the marquee. Services and the about section are
// not kept in Jellyfin and come from the bundled catalog.
type JellyfinSource struct {
	Library   PhotoLibrary
	LibraryID string
}

func (s *JellyfinSource) Fetch(ctx context.Context) (*Catalog, error) {
	albums, err := s.Library.GetPhotoAlbums(ctx, s.LibraryID)
	if err != nil {
		return nil, err
	}
	cat := &Catalog{}
	for _, album := range albums {
		photos, err := s.Library.GetPhotos(ctx, album)
		if err != nil {
			return nil, fmt.Errorf("album %q: %w", album.Name, err)
		}
		for _, p := range photos {
			if !p.HasImage {
				continue
			}
			cat.Projects = append(cat.Projects, Project{
				ID:          p.ID,
				Title:       strings.TrimSpace(p.Name),
				Category:    album.Name,
				Image:       s.Library.GetPhotoURL(p.ID),
				Year:        p.Year,
				Description: p.Overview,
				Featured:    p.Favorite,
			})
		}
	}
	return cat, nil
}
