package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusCanceled SubscriptionStatus = "canceled"
	StatusPastDue  SubscriptionStatus = "past_due"
	StatusUnpaid   SubscriptionStatus = "unpaid"
)

type SubscriptionPlan string

const (
	PlanMonthly   SubscriptionPlan = "monthly"
	PlanQuarterly SubscriptionPlan = "quarterly"
)

// Subscription funds the boost window of exactly one property. The
// payer does not have to be the property's owner.
type Subscription struct {
	ID                   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User                 primitive.ObjectID `json:"user" bson:"user"`
	Property             primitive.ObjectID `json:"property" bson:"property"`
	StripeCustomerID     string             `json:"stripeCustomerId" bson:"stripeCustomerId"`
	StripeSubscriptionID string             `json:"stripeSubscriptionId" bson:"stripeSubscriptionId"`
	Plan                 SubscriptionPlan   `json:"plan" bson:"plan"`
	Status               SubscriptionStatus `json:"status" bson:"status"`
	BoostExpiration      time.Time          `json:"boostExpiration" bson:"boostExpiration"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SubscriptionWithRefs carries the joined payer name and property title
// for the admin boosts table.
type SubscriptionWithRefs struct {
	Subscription
	CustomerFirstname string `json:"customerFirstname"`
	CustomerLastname  string `json:"customerLastname"`
	PropertyTitle     string `json:"propertyTitle"`
}
