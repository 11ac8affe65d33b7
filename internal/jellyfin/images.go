package jellyfin

import (
	"fmt"
	"net/url"
)

// ImageType represents different image types.
type ImageType string

const (
	ImagePrimary  ImageType = "Primary"
	ImageBackdrop ImageType = "Backdrop"
	ImageThumb    ImageType = "Thumb"
)

// GetImageURL constructs a URL for an item's image. The token is appended as
// a query parameter because the image cache fetches URLs without headers.
func (c *Client) GetImageURL(itemID string, imgType ImageType, maxWidth, maxHeight int) string {
	u := fmt.Sprintf("%s/Items/%s/Images/%s", c.serverURL, url.PathEscape(itemID), string(imgType))
	params := url.Values{}
	if maxWidth > 0 {
		params.Set("maxWidth", fmt.Sprintf("%d", maxWidth))
	}
	if maxHeight > 0 {
		params.Set("maxHeight", fmt.Sprintf("%d", maxHeight))
	}
	params.Set("quality", "90")
	if c.token != "" {
		params.Set("api_key", c.token)
	}
	return u + "?" + params.Encode()
}

// GetPhotoURL returns the primary image sized for the portfolio grid and
// modal.
func (c *Client) GetPhotoURL(itemID string) string {
	return c.GetImageURL(itemID, ImagePrimary, 1600, 0)
}
