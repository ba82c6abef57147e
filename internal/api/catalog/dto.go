package catalog

import domain "filmadviser/internal/domain/catalog"

// TitleRequest carries the full field set for create and replace. Every
// field is optional at the API boundary; on PUT, omitted fields overwrite
// the row with zero values.
type TitleRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	PosterURL      string  `json:"poster_url"`
	Rating         float64 `json:"rating"`
	ProductionYear int     `json:"production_year"`
	Duration       int     `json:"duration"`
	Country        string  `json:"country"`
	Genre          string  `json:"genre"`
	Director       string  `json:"director"`
	AgeRating      int     `json:"age_rating"`
	MainRoles      string  `json:"main_roles"`
}

func (r TitleRequest) toTitle() domain.Title {
	return domain.Title{
		Title:          r.Title,
		Description:    r.Description,
		PosterURL:      r.PosterURL,
		Rating:         r.Rating,
		ProductionYear: r.ProductionYear,
		Duration:       r.Duration,
		Country:        r.Country,
		Genre:          r.Genre,
		Director:       r.Director,
		AgeRating:      r.AgeRating,
		MainRoles:      r.MainRoles,
	}
}

// TitlePatch distinguishes "absent" from "zero" so PATCH touches only the
// supplied fields.
type TitlePatch struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	PosterURL      *string  `json:"poster_url"`
	Rating         *float64 `json:"rating"`
	ProductionYear *int     `json:"production_year"`
	Duration       *int     `json:"duration"`
	Country        *string  `json:"country"`
	Genre          *string  `json:"genre"`
	Director       *string  `json:"director"`
	AgeRating      *int     `json:"age_rating"`
	MainRoles      *string  `json:"main_roles"`
}

func (p TitlePatch) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if p.Title != nil {
		u["title"] = *p.Title
	}
	if p.Description != nil {
		u["description"] = *p.Description
	}
	if p.PosterURL != nil {
		u["poster_url"] = *p.PosterURL
	}
	if p.Rating != nil {
		u["rating"] = *p.Rating
	}
	if p.ProductionYear != nil {
		u["production_year"] = *p.ProductionYear
	}
	if p.Duration != nil {
		u["duration"] = *p.Duration
	}
	if p.Country != nil {
		u["country"] = *p.Country
	}
	if p.Genre != nil {
		u["genre"] = *p.Genre
	}
	if p.Director != nil {
		u["director"] = *p.Director
	}
	if p.AgeRating != nil {
		u["age_rating"] = *p.AgeRating
	}
	if p.MainRoles != nil {
		u["main_roles"] = *p.MainRoles
	}
	return u
}
