package nav

import (
	"testing"
	"time"
)

func TestKeySize(t *testing.T) {
	field := KeySize.Field(5)
	if field.Key().Name() != "size" {
		t.Errorf("expected key 'size', got %q", field.Key().Name())
	}
}

func TestKeyVisited(t *testing.T) {
	field := KeyVisited.Field(3)
	if field.Key().Name() != "visited" {
		t.Errorf("expected key 'visited', got %q", field.Key().Name())
	}
}

func TestKeyIndex(t *testing.T) {
	field := KeyIndex.Field(2)
	if field.Key().Name() != "index" {
		t.Errorf("expected key 'index', got %q", field.Key().Name())
	}
}

func TestKeyValue(t *testing.T) {
	field := KeyValue.Field(30)
	if field.Key().Name() != "value" {
		t.Errorf("expected key 'value', got %q", field.Key().Name())
	}
}

func TestKeyError(t *testing.T) {
	field := KeyError.Field("something went wrong")
	if field.Key().Name() != "error" {
		t.Errorf("expected key 'error', got %q", field.Key().Name())
	}
}

func TestKeyListener(t *testing.T) {
	field := KeyListener.Field("*nav.RecordingListener")
	if field.Key().Name() != "listener" {
		t.Errorf("expected key 'listener', got %q", field.Key().Name())
	}
}

func TestKeyDuration(t *testing.T) {
	field := KeyDuration.Field(time.Millisecond)
	if field.Key().Name() != "duration" {
		t.Errorf("expected key 'duration', got %q", field.Key().Name())
	}
}

func TestKeyDebounce(t *testing.T) {
	field := KeyDebounce.Field(100 * time.Millisecond)
	if field.Key().Name() != "debounce" {
		t.Errorf("expected key 'debounce', got %q", field.Key().Name())
	}
}

func TestKeyState(t *testing.T) {
	field := KeyState.Field("healthy")
	if field.Key().Name() != "state" {
		t.Errorf("expected key 'state', got %q", field.Key().Name())
	}
}

func TestKeyOldState(t *testing.T) {
	field := KeyOldState.Field("loading")
	if field.Key().Name() != "old_state" {
		t.Errorf("expected key 'old_state', got %q", field.Key().Name())
	}
}

func TestKeyNewState(t *testing.T) {
	field := KeyNewState.Field("healthy")
	if field.Key().Name() != "new_state" {
		t.Errorf("expected key 'new_state', got %q", field.Key().Name())
	}
}
