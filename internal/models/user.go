package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID              primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Email           string               `json:"email" bson:"email"`
	Firstname       string               `json:"firstname,omitempty" bson:"firstname,omitempty"`
	Lastname        string               `json:"lastname,omitempty" bson:"lastname,omitempty"`
	Password        string               `json:"-" bson:"password,omitempty"`
	Zip             string               `json:"zip,omitempty" bson:"zip,omitempty"`
	ProfileImage    string               `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	AuthProviders   []string             `json:"authProviders,omitempty" bson:"authProviders,omitempty"`
	InstagramHandle string               `json:"instagramHandle,omitempty" bson:"instagramHandle,omitempty"`
	TwitterHandle   string               `json:"twitterHandle,omitempty" bson:"twitterHandle,omitempty"`
	PersonalWebsite string               `json:"personalWebsite,omitempty" bson:"personalWebsite,omitempty"`
	LeaseBio        string               `json:"leaseBio,omitempty" bson:"leaseBio,omitempty"`
	Address         string               `json:"address,omitempty" bson:"address,omitempty"`
	City            string               `json:"city,omitempty" bson:"city,omitempty"`
	State           string               `json:"state,omitempty" bson:"state,omitempty"`
	Country         string               `json:"country,omitempty" bson:"country,omitempty"`
	Phone           string               `json:"phone,omitempty" bson:"phone,omitempty"`
	SuitNumber      string               `json:"suitNumber,omitempty" bson:"suitNumber,omitempty"`
	IsVerified      bool                 `json:"isVerified" bson:"isVerified"`
	Favorites       []primitive.ObjectID `json:"favorites,omitempty" bson:"favorites,omitempty"`
	CreatedAt       time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt" bson:"updatedAt"`

	// Aggregates written by the payout/referral pipeline. This service
	// only reads them back for the admin detail view.
	ReferralEarnings   []ReferralEarning `json:"referralEarnings,omitempty" bson:"referralEarnings,omitempty"`
	WithdrawableAmount int64             `json:"withdrawableAmount,omitempty" bson:"withdrawableAmount,omitempty"`
}

type ReferralEarning struct {
	Amount int64     `json:"amount" bson:"amount"`
	Date   time.Time `json:"date" bson:"date"`
}

// UserDetail is the admin detail view: the stored document plus
// populated favorites and counts derived from it.
type UserDetail struct {
	User
	FavoriteProperties []Property `json:"favoriteProperties,omitempty"`
	ReferralCount      int        `json:"referralCount"`
	SavedProperties    int        `json:"savedProperties"`
}
