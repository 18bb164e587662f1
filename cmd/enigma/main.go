// cmd/enigma/main.go
package main

import (
	"enigma/internal/app"
	"enigma/internal/appshell"
)

func main() { appshell.Main(app.RunIO) }
