package ushape_test

import (
	"fmt"

	"github.com/npillmayer/ushape"
)

func ExampleShapeUnicode() {
	text := []uint16{0x0633, 0x0644, 0x0627, 0x0645} // سلام
	fmt.Printf("%04X\n", ushape.ShapeUnicode(text, ushape.DefaultOptionsWithoutBidi))
	fmt.Printf("%04X\n", ushape.ShapeUnicode(text, ushape.DefaultOptions))
	// Output:
	// [FEB3 FEFC FEE1]
	// [FEE1 FEFC FEB3]
}

func ExampleShapeString() {
	fmt.Println(ushape.ShapeString("abc (שלום)", ushape.DefaultOptions))
	// Output: abc (םולש)
}

func ExampleValidate() {
	err := ushape.Validate(ushape.DefaultOptions | ushape.DigitsEN2AN)
	fmt.Println(err)
	// Output: ushape: unsupported option: digit shaping
}
