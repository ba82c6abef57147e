package catalog

// Kind selects which of the two title tables a record lives in. Movies and
// serials share the same column set but are fully independent catalogs.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSerial Kind = "serial"
)

func (k Kind) Table() string {
	if k == KindSerial {
		return "serials"
	}
	return "movies"
}

// ParseKind maps a route segment ("movies" | "serials") to a Kind.
func ParseKind(segment string) (Kind, bool) {
	switch segment {
	case "movies":
		return KindMovie, true
	case "serials":
		return KindSerial, true
	}
	return "", false
}

type Title struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Title          string  `json:"title"`
	Description    string  `gorm:"type:text" json:"description"`
	PosterURL      string  `gorm:"column:poster_url" json:"poster_url"`
	Rating         float64 `gorm:"type:decimal(10,2)" json:"rating"`
	ProductionYear int     `json:"production_year"`
	Duration       int     `json:"duration"` // minutes
	Country        string  `json:"country"`
	Genre          string  `json:"genre"`
	Director       string  `json:"director"`
	AgeRating      int     `json:"age_rating"`
	MainRoles      string  `gorm:"type:text" json:"main_roles"` // cast blob, free text or JSON
}
