// services/song_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

// SongResult is a normalized song lookup hit
type SongResult struct {
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	VideoID   string `json:"videoId"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

var songHTTPClient = &http.Client{Timeout: 5 * time.Second}

// SearchSong normalizes a free-form song string against the YouTube Data
// API. Best-effort: any failure returns (nil, err) and the caller falls
// back to the raw input.
func SearchSong(ctx context.Context, query string) ([]SongResult, error) {
	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY not set")
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("videoCategoryId", "10") // Music
	params.Set("maxResults", "5")
	params.Set("q", query)
	params.Set("key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://www.googleapis.com/youtube/v3/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := songHTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube search returned status %d", resp.StatusCode)
	}

	var parsed youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	results := make([]SongResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.ID.VideoID == "" {
			continue
		}
		results = append(results, SongResult{
			Title:     item.Snippet.Title,
			Channel:   item.Snippet.ChannelTitle,
			VideoID:   item.ID.VideoID,
			URL:       "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Thumbnail: item.Snippet.Thumbnails.Default.URL,
		})
	}

	if len(results) == 0 {
		log.Printf("youtube search returned no results for %q", query)
	}
	return results, nil
}
