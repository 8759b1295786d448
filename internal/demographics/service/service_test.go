package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Wim1201/locatie-informatie-v5/internal/demographics/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
	"github.com/Wim1201/locatie-informatie-v5/platform/seed"
)

func TestEstimate_FollowsLinearFormulas(t *testing.T) {
	places := [][2]string{{"Utrecht", "Utrecht"}, {"Amsterdam", "Amsterdam"}, {"Súdwest-Fryslân", "Sneek"}, {"", ""}}
	for _, p := range places {
		s := seed.Mod(p[0]+"-"+p[1], 1000)
		got := Estimate(p[0], p[1])

		if got.Inwoners != 5000+s*250 {
			t.Fatalf("%v: inwoners %d, expected %d", p, got.Inwoners, 5000+s*250)
		}
		if got.GemiddeldInkomen != 25000+s*35 {
			t.Fatalf("%v: inkomen %d, expected %d", p, got.GemiddeldInkomen, 25000+s*35)
		}
		if got.Bevolkingsdichtheid != 200+s*6 {
			t.Fatalf("%v: dichtheid %d, expected %d", p, got.Bevolkingsdichtheid, 200+s*6)
		}
		if math.Abs(got.GemiddeldeLeeftijd-(35+float64(s)/100)) > 0.05+1e-9 {
			t.Fatalf("%v: leeftijd %.1f too far from formula", p, got.GemiddeldeLeeftijd)
		}
		if math.Abs(got.KoopwoningenPct-(40+float64(s)/25)) > 0.05+1e-9 {
			t.Fatalf("%v: koopwoningen %.1f too far from formula", p, got.KoopwoningenPct)
		}
		if got.Source != transport.SourceSynthetic {
			t.Fatalf("expected synthetic source")
		}
	}
}

func TestEstimate_IsDeterministic(t *testing.T) {
	if Estimate("Utrecht", "Utrecht") != Estimate("Utrecht", "Utrecht") {
		t.Fatalf("expected identical estimates for the same place")
	}
}

type fakeStats struct {
	n   *transport.Neighbourhood
	err error
}

func (f fakeStats) GetPC4(context.Context, string) (*transport.Neighbourhood, error) {
	return f.n, f.err
}

func TestNeighbourhood_FailureIsAbsent(t *testing.T) {
	svc := New(fakeStats{err: errors.New("503")}, logger.Discard())
	if got := svc.Neighbourhood(context.Background(), "3512"); got != nil {
		t.Fatalf("expected nil neighbourhood on failure, got %+v", got)
	}
}

func TestNeighbourhood_NoPostcodeSkipsLookup(t *testing.T) {
	svc := New(fakeStats{n: &transport.Neighbourhood{Postcode4: "x"}}, logger.Discard())
	if got := svc.Neighbourhood(context.Background(), ""); got != nil {
		t.Fatalf("expected nil neighbourhood without postcode")
	}
}
