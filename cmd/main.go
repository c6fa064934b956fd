package main

import cmd "github.com/RubenBarrionuevo/kyero2is24/cmd/kyero2is24"

func main() {
	cmd.Execute()
}
