package entity

import "time"

// Profile documents come from a form wizard that historically stored
// multi-select fields either as arrays or as comma-separated strings, and
// numeric fields either as numbers or numeric strings. Fields with that
// history are typed interface{} and are only read through the normalizer
// in the service package.

type SeekerProfile struct {
	ID      string      `json:"id" firestore:"id"`
	Name    string      `json:"name" firestore:"name"`
	Age     interface{} `json:"age" firestore:"age"`
	Gender  string      `json:"gender,omitempty" firestore:"gender,omitempty"` // "male", "female"
	MaxRent interface{} `json:"max_rent" firestore:"maxRent"`
	Pets    string      `json:"pets,omitempty" firestore:"pets,omitempty"` // "yes", "no", "any"

	PersonalityTraits interface{} `json:"personality_traits,omitempty" firestore:"personalityTraits,omitempty"`
	Interests         interface{} `json:"interests,omitempty" firestore:"interests,omitempty"`
	CommunalLiving    interface{} `json:"communal_living,omitempty" firestore:"communalLiving,omitempty"`
	Values            interface{} `json:"values,omitempty" firestore:"values,omitempty"`

	LookingFor string `json:"looking_for,omitempty" firestore:"lookingFor,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`

	OwnerID   string    `json:"owner_id" firestore:"ownerId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// RoomGeneration routes deletes to the physical collection a room profile
// was read from. Matching and ranking never branch on it.
type RoomGeneration string

const (
	RoomGenerationCurrent RoomGeneration = "current" // roomProfiles
	RoomGenerationLegacy  RoomGeneration = "legacy"  // wgProfiles
)

type RoomProfile struct {
	ID               string      `json:"id" firestore:"id"`
	Name             string      `json:"name" firestore:"name"`
	MinAge           interface{} `json:"min_age" firestore:"minAge"`
	MaxAge           interface{} `json:"max_age" firestore:"maxAge"`
	GenderPreference string      `json:"gender_preference,omitempty" firestore:"genderPreference,omitempty"` // "male", "female", "any"
	Rent             interface{} `json:"rent" firestore:"rent"`
	PetsAllowed      string      `json:"pets_allowed,omitempty" firestore:"petsAllowed,omitempty"` // "yes", "no", "any"
	RoomType         string      `json:"room_type,omitempty" firestore:"roomType,omitempty"`       // "single", "double"
	AvgAge           interface{} `json:"avg_age" firestore:"avgAge"`

	Description          string `json:"description,omitempty" firestore:"description,omitempty"`
	LookingForInFlatmate string `json:"looking_for_in_flatmate,omitempty" firestore:"lookingForInFlatmate,omitempty"`

	PersonalityTraits interface{} `json:"personality_traits,omitempty" firestore:"personalityTraits,omitempty"`
	Interests         interface{} `json:"interests,omitempty" firestore:"interests,omitempty"`
	CommunalLiving    interface{} `json:"communal_living,omitempty" firestore:"communalLiving,omitempty"`
	Values            interface{} `json:"values,omitempty" firestore:"values,omitempty"`

	PhotoURL string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`

	Generation RoomGeneration `json:"generation,omitempty" firestore:"-"`

	OwnerID   string    `json:"owner_id" firestore:"ownerId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
