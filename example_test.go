package huffman_test

import (
	"fmt"

	huffman "github.com/mahoangnhatphi/HuffmanCompression"
)

func ExampleEncode() {
	table, bits := huffman.Encode("aabbbcc", huffman.DefaultOptions())
	fmt.Print(table)
	fmt.Println(bits)
	fmt.Println(huffman.Decode(bits, table))
	// Output:
	// c : 00
	// a : 01
	// b : 1
	// 01011110000
	// aabbbcc
}

func ExampleDecode() {
	table, err := huffman.ParseTable("a : 0\nb : 01\nc : 1\n")
	if err != nil {
		panic(err)
	}
	fmt.Println(huffman.Decode("011001", table))
	// Output: bcab
}
