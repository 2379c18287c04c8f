package entity

import "strings"

type Role string

const (
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

func (r Role) Valid() bool {
	return r == RoleSeller || r == RoleBuyer
}

// Other returns the role a user cannot hold at the same time as r.
func (r Role) Other() Role {
	if r == RoleBuyer {
		return RoleSeller
	}
	return RoleBuyer
}

type Category string

const (
	CategoryCook     Category = "cook"
	CategoryDriver   Category = "driver"
	CategoryCleaner  Category = "cleaner"
	CategoryMechanic Category = "mechanic"
	CategoryOthers   Category = "others"
)

var Categories = []Category{CategoryCook, CategoryDriver, CategoryCleaner, CategoryMechanic, CategoryOthers}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Location struct {
	City string  `json:"city" firestore:"city"`
	Lat  float64 `json:"lat" firestore:"lat"`
	Lon  float64 `json:"lon" firestore:"lon"`
}

// NormalizeCity is the single normalization applied to stored cities and
// to search queries, so equality matching stays case and padding insensitive.
func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Profile is a gig profile. ID is the owner's uid and Role names the
// collection it lives in; neither is stored inside the document.
type Profile struct {
	ID          string    `json:"id" firestore:"-"`
	Role        Role      `json:"role" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Age         int       `json:"age" firestore:"age"`
	Price       float64   `json:"price" firestore:"price"`
	WorkingDays int       `json:"working_days" firestore:"workingDays"`
	Category    Category  `json:"category" firestore:"category"`
	Visible     bool      `json:"visible" firestore:"visible"`
	Location    *Location `json:"location,omitempty" firestore:"location,omitempty"`
}

// DefaultProfile is what an empty profile form starts from.
func DefaultProfile(uid string) *Profile {
	return &Profile{
		ID:       uid,
		Role:     RoleSeller,
		Category: CategoryCook,
		Visible:  true,
	}
}

// ProfileUpdate carries only the fields a save should touch; nil means keep.
type ProfileUpdate struct {
	Name        *string
	Age         *int
	Price       *float64
	WorkingDays *int
	Category    *Category
	Visible     *bool
	Location    *Location
}

// WithDefaults fills Category and Visible from DefaultProfile when the
// update leaves them unset. Used when the update creates the document.
func (u ProfileUpdate) WithDefaults() ProfileUpdate {
	def := DefaultProfile("")
	if u.Category == nil {
		category := def.Category
		u.Category = &category
	}
	if u.Visible == nil {
		visible := def.Visible
		u.Visible = &visible
	}
	return u
}

func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Age == nil && u.Price == nil && u.WorkingDays == nil &&
		u.Category == nil && u.Visible == nil && u.Location == nil
}

// Apply merges the update into p in place, mirroring a merge write.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.WorkingDays != nil {
		p.WorkingDays = *u.WorkingDays
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Visible != nil {
		p.Visible = *u.Visible
	}
	if u.Location != nil {
		loc := *u.Location
		p.Location = &loc
	}
}
