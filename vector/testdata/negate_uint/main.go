package main

import "github.com/momentics/hioload-generics/vector"

func main() {
	_ = vector.Negated(vector.New[uint](2, 6))
}
