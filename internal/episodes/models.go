package episodes

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Episode is one row of the normalized episode table
type Episode struct {
	Season      int      `json:"season"`
	Number      int      `json:"episode"`
	Title       string   `json:"title"`
	AirDate     string   `json:"air_date"`
	Rating      *float64 `json:"rating"` // nil when the source had no usable rating
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url,omitempty"`
	MainCast    Cast     `json:"main_cast"`
}

// HasRating reports whether the episode carries a rating
func (e Episode) HasRating() bool {
	return e.Rating != nil
}

// Code returns the short S<season>E<episode> label
func (e Episode) Code() string {
	return fmt.Sprintf("S%dE%d", e.Season, e.Number)
}

// Cast is the ordered list of main cast names for an episode
type Cast []string

// Contains reports whether name is in the cast (exact match)
func (c Cast) Contains(name string) bool {
	return slices.Contains(c, name)
}

// UnmarshalJSON accepts either a JSON array of names or a serialized list
// literal such as "['A', 'B']". Anything unusable decodes to an empty cast.
func (c *Cast) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		*c = Cast(names).Normalize()
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*c = ParseCast(raw)
		return nil
	}

	*c = Cast{}
	return nil
}

// jsonlRecord mirrors the line-oriented export of the episode table
type jsonlRecord struct {
	Season      int             `json:"season"`
	Episode     int             `json:"episode"`
	Title       string          `json:"title"`
	AirDate     string          `json:"air_date"`
	Rating      json.RawMessage `json:"rating"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	MainCast    Cast            `json:"main_cast"`
}

// parquetRecord is the parquet row layout of the episode table
type parquetRecord struct {
	Season      int64    `parquet:"season"`
	Episode     int64    `parquet:"episode"`
	Title       string   `parquet:"title"`
	AirDate     string   `parquet:"air_date,optional"`
	Rating      *float64 `parquet:"rating,optional"`
	Description string   `parquet:"description,optional"`
	ImageURL    string   `parquet:"image_url,optional"`
	MainCast    []string `parquet:"main_cast,list"`
}
