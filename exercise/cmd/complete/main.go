package main

import "go.lepak.sg/sx/exercise"

func main() {
	exercise.Main("complete", exercise.Complete)
}
