// keccaksum prints or checks legacy Keccak checksums, in the spirit of
// sha256sum. Algorithm names follow the multiformats registry, so output
// lines pair up with multihash tooling.
package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/bellaj/keccak"
)

// Automatically set through -ldflags
// Example: go install -ldflags "-X main.version=`git describe --tags`"
var version = "master"

// output is swapped out in tests.
var output io.Writer = os.Stdout

var algorithms = map[string]func() *keccak.Hasher{
	"keccak-224": keccak.New224,
	"keccak-256": keccak.New256,
	"keccak-384": keccak.New384,
	"keccak-512": keccak.New512,
}

var (
	algorithmFlag = &cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Usage:   "digest to compute: keccak-224, keccak-256, keccak-384 or keccak-512",
		Value:   "keccak-256",
	}
	checkFlag = &cli.BoolFlag{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "read checksum lines from the given files and verify them",
	}
)

func main() {
	if err := app().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "keccaksum: %v\n", err)
		os.Exit(1)
	}
}

func app() *cli.App {
	return &cli.App{
		Name:      "keccaksum",
		Version:   version,
		Usage:     "print or check legacy Keccak checksums",
		UsageText: "keccaksum [options] [file ...]",
		Flags:     []cli.Flag{algorithmFlag, checkFlag},
		Action:    run,
	}
}

func run(cctx *cli.Context) error {
	name := cctx.String(algorithmFlag.Name)
	newHash, ok := algorithms[name]
	if !ok {
		return fmt.Errorf("unknown algorithm %q (have %s)", name, strings.Join(algorithmNames(), ", "))
	}

	// No operands means stdin, as does the conventional "-".
	args := cctx.Args().Slice()
	if len(args) == 0 {
		args = []string{"-"}
	}

	if cctx.Bool(checkFlag.Name) {
		return check(newHash, args)
	}

	for _, file := range args {
		digest, err := hashFile(newHash, file)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "%x  %s\n", digest, file)
	}
	return nil
}

// check reads checksum lines from the given list files and verifies each
// named file against its recorded digest.
func check(newHash func() *keccak.Hasher, args []string) error {
	failed := 0
	for _, list := range args {
		f, err := openInput(list)
		if err != nil {
			return err
		}

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := sc.Text()
			if line == "" {
				continue
			}
			want, file, ok := parseLine(line)
			if !ok {
				f.Close()
				return fmt.Errorf("malformed checksum line %q", line)
			}
			got, err := hashFile(newHash, file)
			if err != nil {
				f.Close()
				return err
			}
			if bytes.Equal(got, want) {
				fmt.Fprintf(output, "%s: OK\n", file)
			} else {
				failed++
				fmt.Fprintf(output, "%s: FAILED\n", file)
			}
		}
		if err := sc.Err(); err != nil {
			f.Close()
			return fmt.Errorf("reading %s: %w", list, err)
		}
		f.Close()
	}

	if failed > 0 {
		return fmt.Errorf("%d computed checksum(s) did NOT match", failed)
	}
	return nil
}

// parseLine splits a "digest  filename" checksum line.
func parseLine(line string) (digest []byte, file string, ok bool) {
	hexDigest, file, found := strings.Cut(line, "  ")
	if !found {
		return nil, "", false
	}
	digest, err := hex.DecodeString(hexDigest)
	if err != nil || len(digest) == 0 {
		return nil, "", false
	}
	return digest, file, true
}

func hashFile(newHash func() *keccak.Hasher, name string) ([]byte, error) {
	f, err := openInput(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := newHash()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return h.Sum(nil), nil
}

func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
