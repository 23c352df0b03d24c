package main

import (
	subseek "github.com/jaym/subseek/apps/subseek/cmd"
)

func main() {
	subseek.Execute()
}
