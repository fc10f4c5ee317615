package main

import (
	"errors"
	"os"

	"github.com/osse101/Despensa_Go/internal/utils"
)

// profile is the connection state saved between runs
type profile struct {
	BaseURL string `json:"baseUrl,omitempty"`
	UserID  string `json:"userId,omitempty"`
	Token   string `json:"token,omitempty"`
}

func loadProfile(path string) (profile, error) {
	var p profile
	if path == "" {
		return p, nil
	}
	if err := utils.LoadJSON(path, &p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profile{}, nil
		}
		return profile{}, err
	}
	return p, nil
}

func saveProfile(path string, p profile) error {
	return utils.SaveJSON(path, p)
}
