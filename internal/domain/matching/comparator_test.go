package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func TestSalaryMatch(t *testing.T) {
	cases := []struct {
		name      string
		seekerMin *float64
		seekerMax *float64
		jobMin    *float64
		jobMax    *float64
		want      float64
	}{
		{name: "seeker min missing", jobMin: f64(90000), want: 0.5},
		{name: "job min missing", seekerMin: f64(90000), want: 0.5},
		{name: "job min inside band", seekerMin: f64(100000), seekerMax: f64(150000), jobMin: f64(120000), want: 1},
		{name: "job min at band floor", seekerMin: f64(100000), seekerMax: f64(150000), jobMin: f64(100000), want: 1},
		{name: "job min at band ceiling", seekerMin: f64(100000), seekerMax: f64(150000), jobMin: f64(150000), want: 1},
		{name: "open ended seeker", seekerMin: f64(100000), jobMin: f64(400000), want: 1},
		{name: "partial overlap", seekerMin: f64(100000), seekerMax: f64(120000), jobMin: f64(80000), jobMax: f64(110000), want: 0.4},
		{name: "no overlap below", seekerMin: f64(100000), seekerMax: f64(120000), jobMin: f64(50000), jobMax: f64(60000), want: 0.5},
		{name: "no overlap above", seekerMin: f64(100000), seekerMax: f64(120000), jobMin: f64(130000), want: 1 - 30000.0/130000.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SalaryMatch(tc.seekerMin, tc.seekerMax, tc.jobMin, tc.jobMax)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestSalaryMatch_DegenerateInputsStayInRange(t *testing.T) {
	vals := []*float64{nil, f64(0), f64(-10), f64(1), f64(50000), f64(1e9)}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				for _, d := range vals {
					got := SalaryMatch(a, b, c, d)
					assert.GreaterOrEqual(t, got, 0.0)
					assert.LessOrEqual(t, got, 1.0)
				}
			}
		}
	}
}

func TestLocationMatch(t *testing.T) {
	cases := []struct {
		name    string
		desired []string
		job     string
		want    float64
	}{
		{name: "no desired", job: "Berlin", want: 0.5},
		{name: "blank desired", desired: []string{"  "}, job: "Berlin", want: 0.5},
		{name: "no job location", desired: []string{"Berlin"}, want: 0.5},
		{name: "substring", desired: []string{"San Francisco"}, job: "San Francisco, CA", want: 1},
		{name: "case insensitive reverse", desired: []string{"berlin, germany"}, job: "BERLIN", want: 1},
		{name: "both remote", desired: []string{"Remote - US"}, job: "Remote (EU)", want: 1},
		{name: "shared token", desired: []string{"Oakland, CA"}, job: "San Jose, CA", want: 0.7},
		{name: "mismatch", desired: []string{"Berlin"}, job: "Tokyo", want: 0.2},
		{name: "leading comma does not match everything", desired: []string{"Lisbon"}, job: ", Oslo", want: 0.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LocationMatch(tc.desired, tc.job))
		})
	}
}

func TestSkillsMatch(t *testing.T) {
	cases := []struct {
		name     string
		seeker   []string
		required []string
		want     float64
	}{
		{name: "full and missing", seeker: []string{"React", "Python"}, required: []string{"react", "aws"}, want: 0.5},
		{name: "no required skills", seeker: []string{"Go"}, want: 0.5},
		{name: "no seeker skills", required: []string{"Go"}, want: 0},
		{name: "substring counts as full", seeker: []string{"PostgreSQL"}, required: []string{"SQL"}, want: 1},
		{name: "shared long word is partial", seeker: []string{"Machine Learning"}, required: []string{"Deep Learning"}, want: 0.5},
		{name: "short words never partial", seeker: []string{"big api"}, required: []string{"api gateway"}, want: 0},
		{name: "two of three", seeker: []string{"golang", "docker compose"}, required: []string{"Go", "Kubernetes", "Docker"}, want: 2.0 / 3.0},
		{name: "blank seeker skill ignored", seeker: []string{""}, required: []string{"Go"}, want: 0},
		{name: "blank required skill not counted", seeker: []string{"Go"}, required: []string{"Go", " "}, want: 1},
		{name: "only blank required skills", seeker: []string{"Go"}, required: []string{"", "  "}, want: 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, SkillsMatch(tc.seeker, tc.required), 1e-9)
		})
	}
}

func TestExperienceMatch(t *testing.T) {
	assert.Equal(t, 0.7, ExperienceMatch(nil, intp(3)))
	assert.Equal(t, 0.7, ExperienceMatch(intp(3), nil))
	assert.Equal(t, 1.0, ExperienceMatch(intp(4), intp(4)))
	assert.InDelta(t, 0.9, ExperienceMatch(intp(6), intp(4)), 1e-9)
	assert.InDelta(t, 0.8, ExperienceMatch(intp(20), intp(4)), 1e-9)
	assert.InDelta(t, 0.7, ExperienceMatch(intp(2), intp(4)), 1e-9)
	assert.Equal(t, 0.0, ExperienceMatch(intp(0), intp(10)))
}

func TestExperienceMatch_Monotonic(t *testing.T) {
	required := 10
	prev := 2.0
	for have := required; have >= 0; have-- {
		got := ExperienceMatch(intp(have), intp(required))
		assert.LessOrEqual(t, got, prev, "under-qualified gap %d", required-have)
		prev = got
	}

	prev = 2.0
	for have := required; have <= required+15; have++ {
		got := ExperienceMatch(intp(have), intp(required))
		assert.LessOrEqual(t, got, prev, "over-qualified by %d", have-required)
		assert.GreaterOrEqual(t, got, ExperienceOverqualifiedMin)
		prev = got
	}
}

func TestArrayMatch(t *testing.T) {
	assert.Equal(t, 0.5, ArrayMatch(nil, []string{"Collaborative"}))
	assert.Equal(t, 0.5, ArrayMatch([]string{"Collaborative"}, nil))
	assert.InDelta(t, 1.0/3.0, ArrayMatch(
		[]string{"collaborative", "innovative", "remote-first"},
		[]string{"Collaborative team", "Innovation driven"},
	), 1e-9)
	assert.Equal(t, 1.0, ArrayMatch([]string{"Fast-paced team"}, []string{"fast-paced"}))
}

func TestJobTypeAndIndustryMatch(t *testing.T) {
	assert.Equal(t, 1.0, JobTypeMatch([]string{"full-time", "contract"}, "contract"))
	assert.Equal(t, 0.3, JobTypeMatch([]string{"full-time"}, "part-time"))
	assert.Equal(t, 0.3, JobTypeMatch(nil, "part-time"))

	fintech := "Fintech"
	assert.Equal(t, 1.0, IndustryMatch([]string{"Fintech"}, &fintech))
	assert.Equal(t, 0.5, IndustryMatch([]string{"Healthcare"}, &fintech))
	assert.Equal(t, 0.5, IndustryMatch([]string{"Fintech"}, nil))
}
