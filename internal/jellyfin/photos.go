package jellyfin

import (
	"context"
	"fmt"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

const (
	kindPhotoAlbum = jellyfin.BaseItemKind("PhotoAlbum")
	kindPhoto      = jellyfin.BaseItemKind("Photo")
)

// Photo is a simplified Jellyfin photo or album.
type Photo struct {
	ID       string
	Name     string
	Overview string
	Year     int
	Album    string
	Favorite bool
	HasImage bool
}

// GetPhotoAlbums lists the albums under a photo library.
func (c *Client) GetPhotoAlbums(ctx context.Context, libraryID string) ([]Photo, error) {
	req := c.api.ItemsAPI.GetItems(ctx).
		Recursive(true).
		IncludeItemTypes([]jellyfin.BaseItemKind{kindPhotoAlbum}).
		SortBy([]jellyfin.ItemSortBy{jellyfin.ITEMSORTBY_SORT_NAME}).
		SortOrder([]jellyfin.SortOrder{jellyfin.SORTORDER_ASCENDING})
	if c.userID != "" {
		req = req.UserId(c.userID)
	}
	if libraryID != "" {
		req = req.ParentId(libraryID)
	}
	result, resp, err := req.Execute()
	if err != nil {
		return nil, fmt.Errorf("get albums: %w (status: %s)", err, respStatus(resp))
	}
	return convertItems(result.Items, ""), nil
}

// GetPhotos lists the photos in one album, newest first.
func (c *Client) GetPhotos(ctx context.Context, album Photo) ([]Photo, error) {
	req := c.api.ItemsAPI.GetItems(ctx).
		ParentId(album.ID).
		IncludeItemTypes([]jellyfin.BaseItemKind{kindPhoto}).
		Fields([]jellyfin.ItemFields{jellyfin.ITEMFIELDS_OVERVIEW, jellyfin.ITEMFIELDS_PRIMARY_IMAGE_ASPECT_RATIO}).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		ImageTypeLimit(1).
		SortBy([]jellyfin.ItemSortBy{jellyfin.ItemSortBy("PremiereDate")}).
		SortOrder([]jellyfin.SortOrder{jellyfin.SORTORDER_DESCENDING})
	if c.userID != "" {
		req = req.UserId(c.userID)
	}
	result, resp, err := req.Execute()
	if err != nil {
		return nil, fmt.Errorf("get photos in %s: %w (status: %s)", album.Name, err, respStatus(resp))
	}
	return convertItems(result.Items, album.Name), nil
}

func convertItems(items []jellyfin.BaseItemDto, album string) []Photo {
	result := make([]Photo, 0, len(items))
	for i := range items {
		result = append(result, convertItem(&items[i], album))
	}
	return result
}

func convertItem(item *jellyfin.BaseItemDto, album string) Photo {
	p := Photo{
		Name:     item.GetName(),
		Overview: item.GetOverview(),
		Year:     int(item.GetProductionYear()),
		Album:    album,
	}
	if item.Id != nil {
		p.ID = *item.Id
	}
	if _, ok := item.ImageTags["Primary"]; ok {
		p.HasImage = true
	}
	if item.UserData.IsSet() {
		if ud := item.UserData.Get(); ud != nil {
			p.Favorite = ud.GetIsFavorite()
		}
	}
	return p
}
