package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"size:60;not null" json:"-"` // bcrypt hash, never exposed
	AvatarURL string         `gorm:"size:255" json:"avatarUrl"`
	Bio       string         `gorm:"type:text" json:"bio"`
	Age       *int           `json:"age"`
	Gender    string         `gorm:"size:20" json:"gender"`
	SunSign   string         `gorm:"size:20" json:"sun_sign"`
	Interests pq.StringArray `gorm:"type:text" json:"interests"`
	Latitude  *float64       `json:"-"`
	Longitude *float64       `json:"-"`
}

// UserSummary is the denormalized author payload embedded in post listings
// and follower/following lists.
type UserSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}

// GeoPoint is an optional coordinate attached to a profile.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ProfilePatch is the partial-update payload for a user profile. Pointer
// fields distinguish "absent" from an explicit zero value, so only supplied
// fields are touched.
type ProfilePatch struct {
	Name      *string   `json:"name"`
	AvatarURL *string   `json:"avatarUrl"`
	Bio       *string   `json:"bio"`
	Age       *int      `json:"age"`
	Gender    *string   `json:"gender"`
	SunSign   *string   `json:"sun_sign"`
	Interests []string  `json:"interests"`
	Location  *GeoPoint `json:"location"`
}

var validGenders = []string{"male", "female", "other"}

var validSunSigns = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// ApplyPatch validates and applies a profile patch field by field. All
// supplied values are validated before any field is written, so the receiver
// is unchanged when an error is returned.
func (u *User) ApplyPatch(p *ProfilePatch) error {
	if p.Age != nil {
		if *p.Age < 0 || *p.Age > 120 {
			return fmt.Errorf("age must be between 0 and 120")
		}
	}
	if p.Gender != nil {
		g := strings.ToLower(*p.Gender)
		if !contains(validGenders, g) {
			return fmt.Errorf("invalid gender value")
		}
		*p.Gender = g
	}
	if p.SunSign != nil {
		s := strings.ToLower(*p.SunSign)
		if !contains(validSunSigns, s) {
			return fmt.Errorf("invalid sun sign")
		}
		*p.SunSign = s
	}
	if p.Location != nil {
		if p.Location.Lat < -90 || p.Location.Lat > 90 || p.Location.Lng < -180 || p.Location.Lng > 180 {
			return fmt.Errorf("invalid latitude/longitude values")
		}
	}

	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Age != nil {
		u.Age = p.Age
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.SunSign != nil {
		u.SunSign = *p.SunSign
	}
	if p.Interests != nil {
		u.Interests = pq.StringArray(p.Interests)
	}
	if p.Location != nil {
		u.Latitude = &p.Location.Lat
		u.Longitude = &p.Location.Lng
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
