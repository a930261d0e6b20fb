package parser

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findTestFile locates a file under this package's testdata directory.
func findTestFile(t *testing.T, name string) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "could not get caller info")
	path := filepath.Join(filepath.Dir(filename), "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("test file not found: %s", path)
	}
	return path
}

func readTestFile(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(findTestFile(t, name))
	require.NoError(t, err)
	return raw
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Format
	}{
		{"vcf fileformat", "##fileformat=VCFv4.2\n#CHROM\tPOS\n", FormatVCF},
		{"vcf chrom only", "#chrom\tpos\tid\tref\talt\tqual\tfilter\tinfo\n", FormatVCF},
		{"csv header", "rsid,chromosome,position,genotype\nrs1,1,1,AA\n", FormatCSV},
		{"csv header any order", "# export\nGenotype,Position,Chromosome,RSID\n", FormatCSV},
		{"23andme", "# comment\nrs1\t1\t100\tAA\n", Format23andMe},
		{"23andme comments only", "# 23andMe export\n# nothing here\n", Format23andMe},
		{"23andme without comments", "rs1 1 100 AA\n", Format23andMe},
		{"bom", "\xEF\xBB\xBF##fileformat=VCFv4.1\n", FormatVCF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_Unsupported(t *testing.T) {
	for _, raw := range []string{
		"hello\n",
		"name,age\nbob,3\n",
		"just some text\n",
		"Dear doctor,\nplease find my results attached.\n",
		"# notes\nsee attached file\n",
		"rs1801133\t1\tchr1\tCT\n",
		"rs1801133 1 11856378\n",
	} {
		_, err := Detect([]byte(raw))
		assert.ErrorIs(t, err, ErrUnsupportedFormat, raw)
	}
}

func TestDetect_Empty(t *testing.T) {
	for _, raw := range []string{"", "   \n\t\n", "\xEF\xBB\xBF"} {
		_, err := Detect([]byte(raw))
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestSniffers_Independent(t *testing.T) {
	csvLines := []string{"rsid,chromosome,position,genotype"}
	assert.True(t, looksLikeCSV(csvLines))
	assert.False(t, looksLikeVCF(csvLines))

	vcfLines := []string{"##fileformat=vcfv4.2", "#chrom\tpos"}
	assert.True(t, looksLikeVCF(vcfLines))
	assert.False(t, looksLikeCSV(vcfLines))

	assert.False(t, looksLike23andMe(nil))
	assert.False(t, looksLike23andMe([]string{"single"}))
	assert.False(t, looksLike23andMe([]string{"dear doctor,"}))
	assert.True(t, looksLike23andMe([]string{"rs1801133\tct"}))
	assert.True(t, looksLike23andMe([]string{"i3000001 1 100 aa"}))
	assert.True(t, looksLike23andMe([]string{"rsid\tchromosome\tposition\tgenotype"}))
}

func TestParse_23andMe(t *testing.T) {
	res, err := Parse(readTestFile(t, "sample_23andme.txt"), FormatAuto, Options{})
	require.NoError(t, err)

	assert.Equal(t, Format23andMe, res.Format)
	require.Len(t, res.Observations, 6)

	first := res.Observations[0]
	assert.Equal(t, 5, first.Line)
	assert.Equal(t, "rs1801133", first.ID)
	assert.Equal(t, "1", first.Chrom)
	assert.Equal(t, int64(11856378), first.Pos)
	assert.Equal(t, "CT", first.Genotype)
	assert.False(t, first.Malformed)

	assert.Equal(t, "--", res.Observations[3].Genotype)
	assert.False(t, res.Observations[3].Malformed)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 9, res.Skipped[0].Line)
	assert.Equal(t, Format23andMe, res.Skipped[0].Format)
}

func TestParse_23andMeColumnRow(t *testing.T) {
	raw := "rsid\tchromosome\tposition\tgenotype\nrs7412\t19\t45412079\tcc\n"
	res, err := Parse([]byte(raw), Format23andMe, Options{})
	require.NoError(t, err)
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "CC", res.Observations[0].Genotype)
	assert.Empty(t, res.Skipped)
}

func TestParse_23andMeShortForm(t *testing.T) {
	res, err := Parse([]byte("rs1801133\tCT\n"), FormatAuto, Options{})
	require.NoError(t, err)
	assert.Equal(t, Format23andMe, res.Format)
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "rs1801133", res.Observations[0].ID)
	assert.Equal(t, "CT", res.Observations[0].Genotype)
	assert.Equal(t, int64(0), res.Observations[0].Pos)
}

func TestParse_CSV(t *testing.T) {
	res, err := Parse(readTestFile(t, "sample.csv"), FormatAuto, Options{})
	require.NoError(t, err)

	assert.Equal(t, FormatCSV, res.Format)
	require.Len(t, res.Observations, 6)
	assert.Equal(t, 2, res.Observations[0].Line)
	assert.Equal(t, "rs1801133", res.Observations[0].ID)
	assert.Equal(t, "CT", res.Observations[0].Genotype)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 6, res.Skipped[0].Line)
}

func TestParse_CSVHeaderOrder(t *testing.T) {
	raw := "genotype,rsid,position,chromosome\n\"t/t\",\"rs1801133\",11856378,1\n"
	res, err := Parse([]byte(raw), FormatCSV, Options{})
	require.NoError(t, err)
	require.Len(t, res.Observations, 1)

	obs := res.Observations[0]
	assert.Equal(t, "rs1801133", obs.ID)
	assert.Equal(t, "1", obs.Chrom)
	assert.Equal(t, int64(11856378), obs.Pos)
	assert.Equal(t, "TT", obs.Genotype)
	assert.Equal(t, "t/t", obs.Raw)
}

func TestParse_CSVQuotedComma(t *testing.T) {
	raw := "rsid,gene_note,chromosome,position,genotype\n" +
		"rs1801133,\"MTHFR, C677T\",1,11856378,TT\n" +
		"   \n" +
		"rs7412,\"APOE\",19\n" +
		"rs4680,COMT,22,19951271,AG\n"
	res, err := Parse([]byte(raw), FormatAuto, Options{})
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, res.Format)

	require.Len(t, res.Observations, 2)
	obs := res.Observations[0]
	assert.Equal(t, "rs1801133", obs.ID)
	assert.Equal(t, "1", obs.Chrom)
	assert.Equal(t, int64(11856378), obs.Pos)
	assert.Equal(t, "TT", obs.Genotype)
	assert.False(t, obs.Malformed)
	assert.Equal(t, 2, obs.Line)

	assert.Equal(t, "rs4680", res.Observations[1].ID)
	assert.Equal(t, 5, res.Observations[1].Line)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 4, res.Skipped[0].Line)
}

func TestParse_CSVPositionalFallback(t *testing.T) {
	raw := "id,chr,pos,call\nrs7412,19,abc,CT\n"
	res, err := Parse([]byte(raw), FormatCSV, Options{})
	require.NoError(t, err)
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "rs7412", res.Observations[0].ID)
	assert.Equal(t, int64(0), res.Observations[0].Pos)
	assert.Equal(t, "CT", res.Observations[0].Genotype)
}

func TestParse_VCFChromPrefix(t *testing.T) {
	raw := "##fileformat=VCFv4.2\n#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\n" +
		"chr19\t45412079\trs7412\tC\tT\t.\tPASS\t.\tGT\t0/0\n"
	res, err := Parse([]byte(raw), FormatAuto, Options{})
	require.NoError(t, err)

	require.Len(t, res.Observations, 1)
	assert.Equal(t, "19", res.Observations[0].Chrom)
	assert.Equal(t, "CC", res.Observations[0].Genotype)
}

func TestParse_VCF(t *testing.T) {
	res, err := Parse(readTestFile(t, "sample.vcf"), FormatAuto, Options{})
	require.NoError(t, err)

	assert.Equal(t, FormatVCF, res.Format)
	assert.Equal(t, []string{"SAMPLE1"}, res.Samples)
	assert.Equal(t, "SAMPLE1", res.Sample)

	require.Len(t, res.Observations, 5)
	want := []struct {
		id, genotype string
	}{
		{"rs1801133", "CT"},
		{"rs7412", "CC"},
		{"rs4680", "AA"},
		{"rs9939609", GenotypeInvalid},
		{"rs1695", "GA"},
	}
	for i, w := range want {
		assert.Equal(t, w.id, res.Observations[i].ID)
		assert.Equal(t, w.genotype, res.Observations[i].Genotype, w.id)
	}
	assert.True(t, res.Observations[3].Malformed)
	assert.Equal(t, "./.", res.Observations[3].Raw)

	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 8, res.Skipped[0].Line)
	assert.Equal(t, 10, res.Skipped[1].Line)
	assert.Contains(t, res.Skipped[1].Reason, "multi-allelic")
}

func TestParse_VCFSampleSelection(t *testing.T) {
	raw := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tMOTHER\tCHILD\n" +
		"19\t45412079\trs7412\tC\tT\t.\tPASS\t.\tGT\t0/0\t1/1\n"

	res, err := Parse([]byte(raw), FormatVCF, Options{SampleName: "CHILD"})
	require.NoError(t, err)
	assert.Equal(t, "CHILD", res.Sample)
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "TT", res.Observations[0].Genotype)

	res, err = Parse([]byte(raw), FormatVCF, Options{SampleIndex: 0})
	require.NoError(t, err)
	assert.Equal(t, "MOTHER", res.Sample)
	assert.Equal(t, "CC", res.Observations[0].Genotype)

	_, err = Parse([]byte(raw), FormatVCF, Options{SampleName: "FATHER"})
	var serr *SampleError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "FATHER", serr.Name)
	assert.Equal(t, []string{"MOTHER", "CHILD"}, serr.Available)

	_, err = Parse([]byte(raw), FormatVCF, Options{SampleIndex: 2})
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 2, serr.Index)
}

func TestParse_VCFMissingSampleColumn(t *testing.T) {
	raw := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\n" +
		"19\t45412079\trs7412\tC\tT\t.\tPASS\t.\n" +
		"19\tabc\trs429358\tT\tC\t.\tPASS\t.\tGT\t0/1\n" +
		"19\t45411941\trs429358\tT\tC\t.\tPASS\t.\tGT\t0/1\n"

	res, err := Parse([]byte(raw), FormatVCF, Options{})
	require.NoError(t, err)
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "TC", res.Observations[0].Genotype)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 3, res.Skipped[0].Line)
	assert.Equal(t, 4, res.Skipped[1].Line)
}

func TestParse_HeaderOnly(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		format Format
	}{
		{"vcf", "##fileformat=VCFv4.2\n#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tS1\n", FormatVCF},
		{"csv", "rsid,chromosome,position,genotype\n", FormatCSV},
		{"23andme", "# rsid\tchromosome\tposition\tgenotype\n", Format23andMe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse([]byte(tt.raw), FormatAuto, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.format, res.Format)
			assert.Empty(t, res.Observations)
			assert.Empty(t, res.Skipped)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(nil, FormatAuto, Options{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Parse([]byte(" \n\n"), FormatVCF, Options{})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Parse([]byte("just some text\n"), FormatAuto, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Parse([]byte("rs1 1 1 AA\n"), Format("bam"), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_NoTrailingNewline(t *testing.T) {
	res, err := Parse([]byte("rsid,chromosome,position,genotype\r\nrs4680,22,19951271,ag"), FormatAuto, Options{})
	require.NoError(t, err)
	require.Len(t, res.Observations, 1)
	assert.Equal(t, "AG", res.Observations[0].Genotype)
	assert.Equal(t, 2, res.Observations[0].Line)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ag", "AG"},
		{"A/G", "AG"},
		{"a|g", "AG"},
		{" C / T ", "CT"},
		{"--", "--"},
		{GenotypeInvalid, GenotypeInvalid},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestObservation_Malformed(t *testing.T) {
	assert.False(t, newObservation(1, "rs1", "1", 1, "AG", "AG").Malformed)
	assert.False(t, newObservation(1, "rs1", "1", 1, "DI", "DI").Malformed)
	assert.True(t, newObservation(1, "rs1", "1", 1, "XY", "XY").Malformed)
	assert.True(t, newObservation(1, "rs1", "1", 1, "", "").Malformed)

	obs := newObservation(1, "rs1", "1", 1, "A?", "A?")
	assert.Equal(t, "A?", obs.Genotype, "malformed tokens are preserved")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":        FormatAuto,
		"auto":    FormatAuto,
		"23andMe": Format23andMe,
		"CSV":     FormatCSV,
		"vcf":     FormatVCF,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("bam")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestMalformedLineError(t *testing.T) {
	err := &MalformedLineError{Format: FormatCSV, Line: 12, Reason: "expected 4 columns, found 2"}
	assert.Equal(t, "csv line 12: expected 4 columns, found 2", err.Error())
}
