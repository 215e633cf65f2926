package entity

import "time"

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	Role        string `json:"role" firestore:"role"` // "user", "admin"
	PhotoURL    string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
