package main

import (
	"github.com/CryptoKage2306/cosmwasm-custom-decimal/internal/cmd"
)

func main() {
	cmd.Execute()
}
