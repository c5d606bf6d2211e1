// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/vc-tracker/internal/config"

func configStorage(usersFile string) config.Storage {
	return config.Storage{UsersFile: usersFile}
}
