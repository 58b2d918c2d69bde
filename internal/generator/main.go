package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-starkkey")

	cfg, err := starkCurve.config()
	assertNoError(err, "for curve \"%s\"", starkCurve.Name)

	assertNoError(bgen.Generate(cfg, "curve", "templates",
		bavard.Entry{
			File:      "../../pkg/curve/params.go",
			Templates: []string{"params.go.tmpl"},
		},
	), "for curve \"%s\"", starkCurve.Name)
	// run gofmt on the generated file
	runCmd("gofmt", "-w", "../../pkg/curve/params.go")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// starkCurve is the STARK curve y² = x³ + α·x + β over the prime field of
// order P, with base point G generating a subgroup of prime order N.
var starkCurve = curveSpecs{
	Name:    "stark",
	Modulus: "0x800000000000011000000000000000000000000000000000000000000000001",
	Order:   "0x800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f",
	Alpha:   "0x1",
	Beta:    "0x6f21413efbe40de150e596d72f7a8c5609ad26c15c915c1f4cdfcb99cee9e89",
	Gx:      "0x1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca",
	Gy:      "0x5668060aa49730b7be4801df46ec62de53ecd11abe43a32873000c36e8dc1f",
}

type curveSpecs struct {
	Name    string
	Modulus string
	Order   string
	Alpha   string
	Beta    string
	Gx      string
	Gy      string
}

// constant is a field constant rendered both as a decimal (for documentation)
// and as Montgomery-form limbs (for the Go literal).
type constant struct {
	Decimal string
	Limbs   [4]uint64
}

type curveConfig struct {
	curveSpecs
	AlphaMont constant
	BetaMont  constant
	GxMont    constant
	GyMont    constant
	// Order is in regular (not Montgomery) form
	OrderLimbs constant
}

func (c curveSpecs) config() (*curveConfig, error) {
	var (
		p, n    big.Int
		cfg     = curveConfig{curveSpecs: c}
		modulus = &p
	)
	//
	if _, ok := p.SetString(c.Modulus, 0); !ok {
		return nil, fmt.Errorf("invalid modulus %s", c.Modulus)
	} else if _, ok := n.SetString(c.Order, 0); !ok {
		return nil, fmt.Errorf("invalid order %s", c.Order)
	} else if p.BitLen() > 256 || n.BitLen() > 256 {
		return nil, fmt.Errorf("modulus and order must fit in four limbs")
	}
	//
	targets := []*constant{&cfg.AlphaMont, &cfg.BetaMont, &cfg.GxMont, &cfg.GyMont}
	//
	for i, hex := range []string{c.Alpha, c.Beta, c.Gx, c.Gy} {
		var v big.Int
		//
		if _, ok := v.SetString(hex, 0); !ok || v.Cmp(modulus) >= 0 {
			return nil, fmt.Errorf("invalid field constant %s", hex)
		}
		//
		*targets[i] = montgomery(&v, modulus)
	}
	//
	cfg.OrderLimbs = constant{n.String(), limbs(&n)}
	//
	return &cfg, nil
}

// montgomery computes v·R mod p, where R = 2²⁵⁶.
func montgomery(v *big.Int, p *big.Int) constant {
	var m big.Int
	//
	m.Lsh(v, 256).Mod(&m, p)
	//
	return constant{v.String(), limbs(&m)}
}

func limbs(v *big.Int) [4]uint64 {
	var (
		res   [4]uint64
		bytes [32]byte
	)
	//
	v.FillBytes(bytes[:])
	//
	for i := range res {
		for j := range 8 {
			res[i] |= uint64(bytes[31-8*i-j]) << (8 * j)
		}
	}
	//
	return res
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
