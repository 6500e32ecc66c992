package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID cria o identificador curto que correlaciona os logs e o
// status de uma execução da extração.
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
