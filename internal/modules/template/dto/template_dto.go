package dto

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"anoa.com/certdash/internal/entity"
)

// Placeholder is a positioned text slot on a template. X and Y are
// percentage coordinates in [0,100].
type Placeholder struct {
	Name string  `json:"name"`
	Key  string  `json:"key"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type CreateTemplateRequest struct {
	Name         string        `json:"name" binding:"omitempty,max=255"`
	Thumbnail    *string       `json:"thumbnail"`
	Placeholders []Placeholder `json:"placeholders"`
}

type UpdateTemplateRequest struct {
	Name         string        `json:"name" binding:"omitempty,max=255"`
	Placeholders []Placeholder `json:"placeholders"`
}

type TemplateListItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Thumbnail *string `json:"thumbnail"`
	CreatedAt *string `json:"createdAt"`
}

type TemplateResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Thumbnail    *string       `json:"thumbnail"`
	CreatedAt    *string       `json:"createdAt"`
	Placeholders []Placeholder `json:"placeholders"`
}

// ListItemFromTemplate shapes a row for the collection endpoint. The
// thumbnail is passed through opaquely; an unset createdAt degrades to
// null.
func ListItemFromTemplate(tpl *entity.Template) TemplateListItem {
	return TemplateListItem{
		ID:        strconv.FormatUint(uint64(tpl.ID), 10),
		Name:      tpl.Name,
		Thumbnail: tpl.Thumbnail,
		CreatedAt: formatTime(tpl.CreatedAt),
	}
}

// FromTemplate shapes a single template, decoding placeholders
// defensively: malformed JSON degrades to an empty list and is logged, it
// never fails the request.
func FromTemplate(tpl *entity.Template) TemplateResponse {
	return TemplateResponse{
		ID:           strconv.FormatUint(uint64(tpl.ID), 10),
		Name:         tpl.Name,
		Thumbnail:    tpl.Thumbnail,
		CreatedAt:    formatTime(tpl.CreatedAt),
		Placeholders: decodePlaceholders(tpl.ID, tpl.Placeholders),
	}
}

func decodePlaceholders(id uint, raw *string) []Placeholder {
	if raw == nil || *raw == "" {
		return []Placeholder{}
	}
	var placeholders []Placeholder
	if err := json.Unmarshal([]byte(*raw), &placeholders); err != nil {
		log.Printf("failed to parse placeholders for template %d: %v", id, err)
		return []Placeholder{}
	}
	if placeholders == nil {
		return []Placeholder{}
	}
	return placeholders
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
