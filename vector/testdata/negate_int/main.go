package main

import "github.com/momentics/hioload-generics/vector"

func main() {
	_ = vector.Negated(vector.New[int](2, 6))
	_ = vector.Magnitude(vector.New(3.0, 4.0))
}
