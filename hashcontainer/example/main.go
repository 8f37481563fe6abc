package main

import (
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/Highlife1911/ultimate-hashcontainer/hashcontainer"
	"github.com/Highlife1911/ultimate-hashcontainer/hashcontainer/counter"
)

func main() {
	hc, err := hashcontainer.New[uint8, uint8](6)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	hc.Insert(1, 0)
	hc.Insert(1, 1)
	hc.Insert(4, 2)
	hc.Insert(0xFF00_0000_0000_0004, 3)

	// two phase: slot 4 is invisible until it gets linked
	hc.Emplace(4, 4)
	for c := hc.FindEmplaced(4); c.Valid(); c.Next() {
		fmt.Printf("slot 4 collides with slot %d\n", c.Slot())
	}
	hc.InsertEmplaced(4)

	hc.DebugDump(os.Stdout)

	println("------")

	const (
		seed  = 1234567890
		total = 1000
	)

	var faker = gofakeit.New(seed)

	words, err := counter.New(total)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i := 0; i < total; i++ {
		if _, err := words.Inc(faker.Animal()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	for i, ckey := range words.CountedKeys() {
		if i == 10 {
			break
		}
		fmt.Printf("%-20s %v\n", ckey.Key, ckey.Count)
	}
}
