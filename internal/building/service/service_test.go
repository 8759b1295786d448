package service

import (
	"context"
	"errors"
	"testing"

	addresstransport "github.com/Wim1201/locatie-informatie-v5/internal/address/transport"
	"github.com/Wim1201/locatie-informatie-v5/internal/building/client"
	"github.com/Wim1201/locatie-informatie-v5/internal/building/transport"
	energytransport "github.com/Wim1201/locatie-informatie-v5/internal/energylabel/transport"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

type fakeRegistry struct {
	obj   *client.Object
	err   error
	calls int
}

func (f *fakeRegistry) GetObject(context.Context, string) (*client.Object, error) {
	f.calls++
	return f.obj, f.err
}

type fakeLabels struct{ class string }

func (f fakeLabels) Lookup(context.Context, string, energytransport.AddressKey) (*energytransport.EnergyLabel, error) {
	return &energytransport.EnergyLabel{Energieklasse: f.class}, nil
}

func TestSynthetic_IsDeterministic(t *testing.T) {
	ids := []string{"0344010000094411", "0363010000696734", "", "x"}
	for _, id := range ids {
		a, b := Synthetic(id), Synthetic(id)
		if a != b {
			t.Fatalf("expected identical records for %q, got %+v and %+v", id, a, b)
		}
		if a.Bouwjaar < 1950 || a.Bouwjaar >= 2020 {
			t.Fatalf("year %d out of range for %q", a.Bouwjaar, id)
		}
		if a.Oppervlakte < 50 || a.Oppervlakte >= 175 {
			t.Fatalf("area %d out of range for %q", a.Oppervlakte, id)
		}
		if !a.Synthetic() {
			t.Fatalf("expected synthetic source")
		}
	}
}

func TestFetch_UsesRegistry(t *testing.T) {
	reg := &fakeRegistry{obj: &client.Object{ID: "1", Bouwjaar: 1931, Oppervlakte: 88, Gebruiksdoel: "woonfunctie", Status: "Verblijfsobject in gebruik"}}
	svc := New(reg, nil, logger.Discard())

	got := svc.Fetch(context.Background(), addresstransport.Location{AddressableObjectID: "1"})
	if got.Source != transport.SourceBAG || got.Bouwjaar != 1931 || got.Oppervlakte != 88 {
		t.Fatalf("expected BAG record, got %+v", got)
	}
}

func TestFetch_SameSyntheticRecordOnEveryFailurePath(t *testing.T) {
	loc := addresstransport.Location{AddressableObjectID: "0344010000094411"}
	want := Synthetic(loc.AddressableObjectID)

	paths := map[string]Registry{
		"no key":    nil,
		"not found": &fakeRegistry{err: client.ErrNotFound},
		"upstream":  &fakeRegistry{err: errors.New("status 503")},
	}
	for name, reg := range paths {
		got := New(reg, nil, logger.Discard()).Fetch(context.Background(), loc)
		if got.Bouwjaar != want.Bouwjaar || got.Oppervlakte != want.Oppervlakte || !got.Synthetic() {
			t.Fatalf("%s: expected %+v, got %+v", name, want, got)
		}
		if got.ObjectID != loc.AddressableObjectID {
			t.Fatalf("%s: expected object id to be kept", name)
		}
	}
}

func TestFetch_MissingIdentifierSkipsRegistry(t *testing.T) {
	reg := &fakeRegistry{}
	got := New(reg, nil, logger.Discard()).Fetch(context.Background(), addresstransport.Location{Label: "Domplein 29, 3512JE Utrecht"})

	if reg.calls != 0 {
		t.Fatalf("expected registry not to be called, got %d calls", reg.calls)
	}
	if got != Synthetic("Domplein 29, 3512JE Utrecht") {
		t.Fatalf("expected record seeded by the address label, got %+v", got)
	}
}

func TestFetch_AttachesEnergyLabel(t *testing.T) {
	got := New(nil, fakeLabels{class: "B"}, logger.Discard()).Fetch(context.Background(), addresstransport.Location{AddressableObjectID: "1"})
	if got.Energielabel != "B" {
		t.Fatalf("expected energy label B, got %q", got.Energielabel)
	}
}
