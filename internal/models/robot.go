package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// RobotSpecifications models the well-known datasheet fields the catalog
// sorts and filters on. Keys the platform does not know about survive a
// round-trip through Extra.
type RobotSpecifications struct {
	PayloadKG         *float64 `json:"payload_kg,omitempty"`
	ReachM            *float64 `json:"reach_m,omitempty"`
	RepeatabilityMM   *float64 `json:"repeatability_mm,omitempty"`
	Axes              *int     `json:"axes,omitempty"`
	WeightKG          *float64 `json:"weight_kg,omitempty"`
	IPRating          string   `json:"ip_rating,omitempty"`
	PowerConsumptionW *float64 `json:"power_consumption_w,omitempty"`
	MaxSpeedMS        *float64 `json:"max_speed_ms,omitempty"`

	// Extra holds specification keys outside the typed set above.
	Extra map[string]any `json:"-"`
}

// knownSpecKeys are the keys owned by the typed fields of RobotSpecifications.
var knownSpecKeys = []string{
	"payload_kg", "reach_m", "repeatability_mm", "axes",
	"weight_kg", "ip_rating", "power_consumption_w", "max_speed_ms",
}

type robotSpecificationsAlias RobotSpecifications

// MarshalJSON folds Extra back into the flat specification object.
// Typed fields win over Extra on key collisions.
func (s RobotSpecifications) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(robotSpecificationsAlias(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return raw, nil
	}
	merged := make(map[string]any, len(s.Extra)+8)
	for k, v := range s.Extra {
		merged[k] = v
	}
	var typed map[string]any
	if err := json.Unmarshal(raw, &typed); err != nil {
		return nil, err
	}
	for k, v := range typed {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON splits a flat specification object into the typed fields
// and the Extra residue.
func (s *RobotSpecifications) UnmarshalJSON(data []byte) error {
	var alias robotSpecificationsAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range knownSpecKeys {
		delete(all, k)
	}
	if len(all) > 0 {
		alias.Extra = all
	}
	*s = RobotSpecifications(alias)
	return nil
}

// Robot is a catalog entry. Rows are written only by the seeding CLI;
// the HTTP surface treats the catalog as read-only.
type Robot struct {
	ID             string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Slug           string         `json:"slug" gorm:"uniqueIndex;not null" validate:"required"`
	Name           string         `json:"name" gorm:"index;not null" validate:"required,min=2,max=120"`
	Brand          string         `json:"brand,omitempty"`
	Model          string         `json:"model,omitempty"`
	Type           string         `json:"type" validate:"required"`
	Application    string         `json:"application,omitempty"`
	PriceRange     string         `json:"price_range,omitempty"`
	PriceMin       *float64       `json:"price_min,omitempty" validate:"omitempty,gte=0"`
	PriceMax       *float64       `json:"price_max,omitempty" validate:"omitempty,gte=0"`
	Description    string         `json:"description,omitempty"`
	Features       datatypes.JSON `json:"features,omitempty"`
	Specifications datatypes.JSON `json:"specifications"`
	ImageURL       string         `json:"image_url,omitempty"`
	GalleryURLs    datatypes.JSON `json:"gallery_urls,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Specs decodes the specifications column. Malformed JSON yields the
// zero value rather than an error; specification access is best-effort.
func (r *Robot) Specs() RobotSpecifications {
	var s RobotSpecifications
	if len(r.Specifications) == 0 {
		return s
	}
	_ = json.Unmarshal(r.Specifications, &s)
	return s
}

// SetSpecs encodes s into the specifications column.
func (r *Robot) SetSpecs(s RobotSpecifications) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	r.Specifications = datatypes.JSON(raw)
	return nil
}

// StringList encodes items as a JSON array column value.
func StringList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	raw, _ := json.Marshal(items)
	return datatypes.JSON(raw)
}
