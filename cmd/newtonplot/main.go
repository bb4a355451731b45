// Command newtonplot renders the Newton polygon of a polynomial under a
// Gauss valuation, or an augmentation of one, to an HTML chart.
//
// Example:
//
//	newtonplot -p 2 -prec 5 -f 3,2,1 -phi 1,1,1 -mu 1 -o newton.html
//
// plots x^2+2x+3 over the 5-digit 2-adic ring under the extension of the
// Gauss valuation by x^2+x+1 with assigned value 1.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	maclane "github.com/jonathanmweiss/go-maclane"
	"github.com/jonathanmweiss/go-maclane/ring"
)

func main() {
	var (
		p      = flag.Uint64("p", 2, "prime of the p-adic coefficient ring")
		prec   = flag.Int("prec", 5, "precision cap of the coefficient ring")
		fStr   = flag.String("f", "", "comma-separated coefficients of f, lowest degree first")
		phiStr = flag.String("phi", "", "optional key polynomial to augment the Gauss valuation with")
		muStr  = flag.String("mu", "1", "assigned value of the key polynomial (integer or a/b)")
		out    = flag.String("o", "newton.html", "output HTML file")
	)
	flag.Parse()

	if *fStr == "" {
		flag.Usage()
		os.Exit(2)
	}

	base, err := ring.NewPadicRing(*p, *prec)
	if err != nil {
		log.Fatalf("coefficient ring: %v", err)
	}

	domain := ring.NewPolyRing(base, "x")

	var v maclane.Valuation

	gauss, err := maclane.NewGaussValuation(domain, maclane.NewPadicValuation(base))
	if err != nil {
		log.Fatalf("gauss valuation: %v", err)
	}
	v = gauss

	if *phiStr != "" {
		phi, err := parsePoly(domain, *phiStr)
		if err != nil {
			log.Fatalf("key polynomial: %v", err)
		}

		mu, err := parseValue(*muStr)
		if err != nil {
			log.Fatalf("assigned value: %v", err)
		}

		v, err = gauss.Extension(phi, mu)
		if err != nil {
			log.Fatalf("extension: %v", err)
		}
	}

	f, err := parsePoly(domain, *fStr)
	if err != nil {
		log.Fatalf("polynomial: %v", err)
	}

	np, err := v.NewtonPolygon(f)
	if err != nil {
		log.Fatalf("newton polygon: %v", err)
	}

	if err := render(v, f, np, *out); err != nil {
		log.Fatalf("render: %v", err)
	}

	log.Printf("%v", np)
	log.Printf("wrote %s", *out)
}

func parsePoly(domain *ring.PolyRing, s string) (*ring.Polynomial, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]int64, len(parts))

	for i, part := range parts {
		c, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}

		coeffs[i] = c
	}

	return domain.FromInts(coeffs...), nil
}

func parseValue(s string) (maclane.Value, error) {
	num, den := s, ""
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, den = s[:i], s[i+1:]
	}

	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return maclane.Value{}, err
	}

	if den == "" {
		return maclane.ValueOf(n), nil
	}

	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return maclane.Value{}, err
	}

	return maclane.NewValue(n, d), nil
}

func render(v maclane.Valuation, f *ring.Polynomial, np *maclane.NewtonPolygon, out string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Newton polygon of %v", f),
			Subtitle: v.String(),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "index", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "valuation", Type: "value"}),
	)

	terms := make([]opts.LineData, 0, len(np.Points()))
	for _, pt := range np.Points() {
		if pt.Y.IsInf() {
			continue
		}

		terms = append(terms, opts.LineData{Value: []interface{}{pt.X, pt.Y.Float64()}})
	}

	hull := make([]opts.LineData, 0, len(np.Vertices()))
	for _, pt := range np.Vertices() {
		hull = append(hull, opts.LineData{Value: []interface{}{pt.X, pt.Y.Float64()}})
	}

	line.AddSeries("term valuations", terms)
	line.AddSeries("lower hull", hull)

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()

	return line.Render(w)
}
