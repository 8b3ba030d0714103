package dbcs

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func expectString(t *testing.T, call string, have string, err error, want string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", call, err)
		return
	}
	if have != want {
		t.Errorf("%s = %q, expected %q", call, have, want)
	}
}

func expectNegative(t *testing.T, call string, err error, param string) {
	t.Helper()
	if !errors.Is(err, ErrNegativeArgument) {
		t.Errorf("%s: expected ErrNegativeArgument, have %v", call, err)
		return
	}
	var aerr *ArgumentError
	if !errors.As(err, &aerr) || aerr.Param != param {
		t.Errorf("%s: expected offending parameter %q, have %v", call, param, err)
	}
}

func TestLenB(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := Null().LenB(); !errors.Is(err, ErrNullInput) {
		t.Errorf("expected ErrNullInput for null text, have %v", err)
	}
	for text, n := range map[string]int{
		"":                     0,
		"\t\r\n ":              4,
		"科学の　力って　すげー！":         24,
		"Science is amazing!":  19,
		"Science　is　amazing!": 21,
	} {
		if l := LenB(text); l != n {
			t.Errorf("LenB(%q) = %d, expected %d", text, l, n)
		}
		l, err := FromString(text).LenB()
		if err != nil || l != n {
			t.Errorf("Text(%q).LenB() = %d, expected %d (err=%v)", text, l, n, err)
		}
	}
}

func TestMidB(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := Null().MidB(0, 0); !errors.Is(err, ErrNullInput) {
		t.Errorf("expected ErrNullInput for null text, have %v", err)
	}
	if _, err := Null().MidB(-1, -1); !errors.Is(err, ErrNullInput) {
		t.Errorf("expected null check to come first, have %v", err)
	}
	_, err := MidB("", -1, 0)
	expectNegative(t, `MidB("", -1, 0)`, err, "start")
	_, err = MidB("", 0, -1)
	expectNegative(t, `MidB("", 0, -1)`, err, "length")
	_, err = MidB("", -1, -1)
	expectNegative(t, `MidB("", -1, -1)`, err, "start")
	//
	for _, tc := range []struct {
		text          string
		start, length int
		want          string
	}{
		{"", 0, 0, ""}, // zero length
		{"Pikachu", 3, 0, ""},
		{"ピカチュウ", 4, 0, ""},
		{"", 1, 2, ""}, // start beyond end
		{"Pikachu", 7, 1, ""},
		{"ピカチュウ", 10, 2, ""},
		{"", 0, 2, ""}, // length beyond end
		{"Pikachu", 5, 3, "hu"},
		{"ピカチュウ", 8, 3, "ウ"},
		{"Pikachu", 0, 4, "Pika"},
		{"ピカチュウ", 4, 6, "チュウ"},
		{"ピカチュウ", 0, 3, "ピ "}, // split at the end
		{"ピカチュウ", 1, 3, "sカ"}, // split at the start
	} {
		s, err := MidB(tc.text, tc.start, tc.length)
		expectString(t, "MidB", s, err, tc.want)
	}
}

func TestMidToEndB(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := Null().MidToEndB(0); !errors.Is(err, ErrNullInput) {
		t.Errorf("expected ErrNullInput for null text, have %v", err)
	}
	_, err := MidToEndB("", -1)
	expectNegative(t, `MidToEndB("", -1)`, err, "start")
	//
	for _, tc := range []struct {
		text  string
		start int
		want  string
	}{
		{"", 1, ""},
		{"Pikachu", 7, ""},
		{"ピカチュウ", 10, ""},
		{"Pikachu", 0, "Pikachu"},
		{"ピカチュウ", 4, "チュウ"},
		{"ピカチュウ", 1, "sカチュウ"}, // split at the start
	} {
		s, err := MidToEndB(tc.text, tc.start)
		expectString(t, "MidToEndB", s, err, tc.want)
	}
}

func TestLeftB(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := Null().LeftB(0); !errors.Is(err, ErrNullInput) {
		t.Errorf("expected ErrNullInput for null text, have %v", err)
	}
	_, err := LeftB("", -1)
	expectNegative(t, `LeftB("", -1)`, err, "length")
	//
	for _, tc := range []struct {
		text   string
		length int
		want   string
	}{
		{"", 1, ""},
		{"Poké Ball", 10, "Poké Ball"}, // unchanged, 'é' survives
		{"モンスターボール", 17, "モンスターボール"},
		{"Poké Ball", 6, "Pok\x1a B"}, // 'é' is not in Shift-JIS
		{"モンスターボール", 6, "モンス"},
		{"モンスターボール", 7, "モンス "}, // split
	} {
		s, err := LeftB(tc.text, tc.length)
		expectString(t, "LeftB", s, err, tc.want)
	}
}

func TestLeftBReturnsValueUnchanged(t *testing.T) {
	text := FromString("Poké Ball")
	left, err := text.LeftB(9)
	if err != nil {
		t.Fatal(err)
	}
	if left != text {
		t.Errorf("expected LeftB to return the text itself, have %q", left)
	}
}

func TestRightB(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := Null().RightB(0); !errors.Is(err, ErrNullInput) {
		t.Errorf("expected ErrNullInput for null text, have %v", err)
	}
	_, err := RightB("", -1)
	expectNegative(t, `RightB("", -1)`, err, "length")
	//
	for _, tc := range []struct {
		text   string
		length int
		want   string
	}{
		{"", 0, ""}, // zero length
		{"Poké Ball", 0, ""},
		{"モンスターボール", 0, ""},
		{"", 1, ""}, // length beyond end
		{"Poké Ball", 10, "Poké Ball"},
		{"モンスターボール", 17, "モンスターボール"},
		{"Poké Ball", 6, "\x1a Ball"},
		{"モンスターボール", 6, "ボール"},
		{"モンスターボール", 7, "[ボール"}, // split: orphaned trail byte of 'ー'
	} {
		s, err := RightB(tc.text, tc.length)
		expectString(t, "RightB", s, err, tc.want)
	}
}

func TestTextNullability(t *testing.T) {
	if !(Text{}).IsNull() || !Null().IsNull() || !FromPtr(nil).IsNull() {
		t.Errorf("expected zero Text, Null() and FromPtr(nil) to be null")
	}
	if FromString("").IsNull() {
		t.Errorf("expected empty string to be non-null")
	}
	s := "ピカ"
	text := FromPtr(&s)
	if text.IsNull() || text.String() != s {
		t.Errorf("expected FromPtr to carry %q, have %q", s, text)
	}
	if p := text.Ptr(); p == nil || *p != s {
		t.Errorf("expected Ptr to return %q", s)
	}
	if Null().Ptr() != nil {
		t.Errorf("expected Ptr of null text to be nil")
	}
}
