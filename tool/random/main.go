package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"sysrand/internal/random"
	"sysrand/internal/system"
)

var (
	size    int
	u32     bool
	u64     bool
	b64     bool
	hexadec bool
	output  string
)

func main() {
	flag.CommandLine.Usage = printHelp
	flag.IntVar(&size, "n", 32, "the number of random bytes")
	flag.BoolVar(&u32, "u32", false, "generate a random uint32")
	flag.BoolVar(&u64, "u64", false, "generate a random uint64")
	flag.BoolVar(&b64, "b64", false, "print base64 string")
	flag.BoolVar(&hexadec, "hex", false, "print hex string")
	flag.StringVar(&output, "output", "", "write raw bytes to a file")
	flag.Parse()

	defer func() { system.CheckError(random.Close()) }()
	switch {
	case u32:
		n, err := random.Uint32()
		system.CheckError(err)
		fmt.Println(n)
	case u64:
		n, err := random.Uint64()
		system.CheckError(err)
		fmt.Println(n)
	case b64:
		str, err := random.String(size)
		system.CheckError(err)
		fmt.Println(str)
	case hexadec:
		b, err := random.Bytes(size)
		system.CheckError(err)
		fmt.Println(hex.EncodeToString(b))
	case output != "":
		b, err := random.Bytes(size)
		system.CheckError(err)
		system.CheckError(system.WriteFile(output, b))
	default:
		b, err := random.Bytes(size)
		system.CheckError(err)
		_, err = os.Stdout.Write(b)
		system.CheckError(err)
	}
}

func printHelp() {
	const help = `
usage:

  random -n 32 -b64          print a base64 string that encodes 32 random bytes
  random -n 16 -hex          print a hex string that encodes 16 random bytes
  random -u32                print a random uint32
  random -u64                print a random uint64
  random -n 64 -output f     write 64 raw random bytes to file "f"
  random -n 16               write 16 raw random bytes to stdout

`
	fmt.Print(help)
	flag.PrintDefaults()
}
