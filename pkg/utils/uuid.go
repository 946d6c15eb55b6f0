package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID produces a short alphanumeric ID used as the answer primary key.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
