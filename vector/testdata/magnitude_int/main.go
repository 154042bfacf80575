package main

import "github.com/momentics/hioload-generics/vector"

func main() {
	_ = vector.Magnitude(vector.New(3, 4))
}
