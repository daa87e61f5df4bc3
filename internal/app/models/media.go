package models

// Video is a single video search hit.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Channel     string `json:"channel"`
	PublishTime string `json:"publishTime"`
}

type MediaSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

type VideoSearchResponse struct {
	Videos []Video `json:"videos"`
}

// ImageSearchResponse carries a nil Image when nothing was found.
type ImageSearchResponse struct {
	Image *string `json:"image"`
}
