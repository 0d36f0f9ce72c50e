// 15 Oct 2026

package ingest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/andrew-torda/exoncons/pkg/read"
)

// Meta is what we learn from a name like sample_A_2F.ab1
type Meta struct {
	Sample string
	Exon   read.ExonID
	Dir    read.Direction
}

// exonDir is a token like 2F or 12r
var exonDir = regexp.MustCompile(`^([0-9]+)([fFrR])$`)

// ParseName takes a file or record name. Directory and a known extension are
// dropped, the rest is split on underscores. The last token that
// looks like exon number + direction is used. Anything before it is
// the sample name.
func ParseName(name string) (Meta, error) {
	base := filepath.Base(name)
	if i := strings.IndexAny(base, " \t"); i >= 0 { // fastq comments
		base = base[:i]
	}
	if isReadFile(base) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	toks := strings.Split(base, "_")
	for i := len(toks) - 1; i >= 0; i-- {
		m := exonDir.FindStringSubmatch(toks[i])
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return Meta{}, fmt.Errorf("%s: exon number %q must be positive", name, m[1])
		}
		meta := Meta{Sample: strings.Join(toks[:i], "_"), Exon: read.ExonID(n), Dir: read.Fwd}
		if m[2] == "R" || m[2] == "r" {
			meta.Dir = read.Rev
		}
		return meta, nil
	}
	return Meta{}, fmt.Errorf("%s does not match the pattern sample_exondirection, like sample_A_2F.ab1", name)
}
