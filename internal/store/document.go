// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/vc-tracker/models"
)

const documentIndent = "    "

// decodeDocument parses and validates the raw users document. Unknown
// fields are rejected so that a document of another shape fails here and
// not deep inside the services.
func decodeDocument(data []byte) (models.Users, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var users models.Users
	if err := dec.Decode(&users); err != nil {
		return nil, fmt.Errorf("decoding users document: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decoding users document: trailing data after document")
	}
	if users == nil {
		// a literal `null` document
		users = models.Users{}
	}

	for username, user := range users {
		user.Username = username
		if err := validateUser(user); err != nil {
			return nil, fmt.Errorf("user %q: %w", username, err)
		}
		if user.VCRecords == nil {
			user.VCRecords = []models.VCRecord{}
		}
		users[username] = user
	}

	return users, nil
}

// encodeDocument serializes users with a stable layout: map keys are sorted
// by encoding/json, so encoding the result of a decode reproduces it.
func encodeDocument(users models.Users) ([]byte, error) {
	if users == nil {
		users = models.Users{}
	}

	for username, user := range users {
		if user.VCRecords == nil {
			user.VCRecords = []models.VCRecord{}
		}
		for i := range user.VCRecords {
			if user.VCRecords[i].Payments == nil {
				user.VCRecords[i].Payments = []models.Payment{}
			}
		}
		users[username] = user
	}

	data, err := json.MarshalIndent(users, "", documentIndent)
	if err != nil {
		return nil, fmt.Errorf("encoding users document: %w", err)
	}

	return append(data, '\n'), nil
}

func validateUser(user models.User) error {
	if user.Username == "" {
		return errEmptyUsername
	}
	if user.PasswordHash == "" {
		return errEmptyPasswordHash
	}

	seen := make(map[string]struct{}, len(user.VCRecords))
	for i := range user.VCRecords {
		record := &user.VCRecords[i]
		if err := validateRecord(*record); err != nil {
			return fmt.Errorf("record #%d: %w", i, err)
		}
		if _, ok := seen[record.ID]; ok {
			return fmt.Errorf("record %q: %w", record.ID, errDuplicateRecordID)
		}
		seen[record.ID] = struct{}{}

		if record.Payments == nil {
			record.Payments = []models.Payment{}
		}
	}

	return nil
}

func validateRecord(record models.VCRecord) error {
	switch {
	case record.ID == "":
		return errEmptyRecordID
	case record.Name == "":
		return errEmptyRecordName
	case record.StartDate.IsZero():
		return errEmptyRecordStartDate
	}

	seen := make(map[string]struct{}, len(record.Payments))
	for i, payment := range record.Payments {
		switch {
		case payment.ID == "":
			return fmt.Errorf("payment #%d: %w", i, errEmptyPaymentID)
		case payment.Date.IsZero():
			return fmt.Errorf("payment %q: %w", payment.ID, errEmptyPaymentDate)
		}
		if _, ok := seen[payment.ID]; ok {
			return fmt.Errorf("payment %q: %w", payment.ID, errDuplicatePaymentID)
		}
		seen[payment.ID] = struct{}{}
	}

	return nil
}
