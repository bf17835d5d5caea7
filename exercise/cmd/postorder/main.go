package main

import "go.lepak.sg/sx/exercise"

func main() {
	exercise.Main("postorder", exercise.PostOrder)
}
