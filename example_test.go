package jarkup_test

import (
	"context"
	"fmt"

	"github.com/reoring/jarkup"
)

func ExampleMarshal() {
	h := jarkup.Heading{
		Props: jarkup.HeadingProps{Level: jarkup.H2},
		Slots: jarkup.HeadingSlots{Default: []jarkup.InlineComponent{
			jarkup.Text{Props: jarkup.TextProps{Text: "Hello", Bold: true}},
		}},
	}
	out, _ := jarkup.Marshal(h)
	fmt.Println(string(out))
	// Output: {"inline":false,"props":{"level":2},"slots":{"default":[{"inline":true,"props":{"bold":true,"text":"Hello"},"type":"Text"}]},"type":"Heading"}
}

func ExampleUnmarshalDocument_issues() {
	in := `[{"type":"Heading","inline":false,"props":{"level":7},"slots":{"default":[]}}]`
	_, err := jarkup.UnmarshalDocument(context.Background(), []byte(in))
	iss, _ := jarkup.AsIssues(err)
	for _, it := range iss {
		fmt.Println(it.Code, it.Path)
	}
	// Output: out_of_range /0/props/level
}

func ExampleWalkDocument() {
	doc := jarkup.Document{
		jarkup.List{Slots: jarkup.ListSlots{Default: []jarkup.Component{
			jarkup.ListItem{Slots: jarkup.ListItemSlots{Default: []jarkup.InlineComponent{jarkup.Text{Props: jarkup.TextProps{Text: "a"}}}}},
		}}},
	}
	jarkup.WalkDocument(doc, func(c jarkup.Component, depth int) bool {
		fmt.Println(depth, c.Kind())
		return true
	})
	// Output:
	// 0 List
	// 1 ListItem
	// 2 Text
}
