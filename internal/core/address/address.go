// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package address manages postal addresses attached to personal profiles.

An address always references an existing profile (core.personal); removing
the profile removes its addresses. City, province and country are optional
and serialize as null when absent.
*/
package address

import "time"

// Address is a postal address of one personal profile.
type Address struct {
	ID          int64     `json:"id"`
	PersonalID  int64     `json:"personalId"`
	AddressName string    `json:"addressName"`
	Address     string    `json:"address"`
	City        *string   `json:"city"`
	Province    *string   `json:"province"`
	Country     *string   `json:"country"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Global field names for validation
const (
	FieldPersonalID  = "personalId"
	FieldAddressName = "addressName"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldProvince    = "province"
	FieldCountry     = "country"
)

// MaxFieldLength bounds every text column of core.address.
const MaxFieldLength = 255

const resourceAddress = "Address"

// # Response Messages

const (
	MessageCreated = "Address created successfully"
	MessageUpdated = "Address updated successfully"
	MessageFound   = "Address found"
	MessageDeleted = "Address deleted successfully"
)
