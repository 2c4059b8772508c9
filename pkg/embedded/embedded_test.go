package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/race.yaml": &fstest.MapFile{Data: []byte("title: Turtle Racing\n")},
	}
}

// TestNotInitialized 测试未初始化时的调用
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := ReadFile("data/race.yaml"); !errors.Is(err, errNotInitialized) {
		t.Errorf("ReadFile() error = %v, want errNotInitialized", err)
	}
}

// TestReadFile 测试路径标准化和读取
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/race.yaml", false},
		{"带 ./ 前缀", "./data/race.yaml", false},
		{"未知前缀", "assets/race.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != "title: Turtle Racing\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}
}
