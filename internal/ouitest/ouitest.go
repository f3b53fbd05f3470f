// Package ouitest 构造注册表二进制流，供各包测试使用。
package ouitest

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"
	"time"
)

// Record 一条原始记录。Name 按字节写出，不做 UTF-8 校验，便于构造非法输入。
type Record struct {
	ID   [3]byte
	Name string
}

// Stream 按二进制格式拼出完整的注册表流
func Stream(lastModified time.Time, records ...Record) []byte {
	var buf bytes.Buffer
	var hdr [8]byte
	binary.BigEndian.PutUint64(hdr[:], uint64(lastModified.UnixMilli()))
	buf.Write(hdr[:])
	for _, r := range records {
		buf.Write(r.ID[:])
		var n [2]byte
		binary.BigEndian.PutUint16(n[:], uint16(len(r.Name)))
		buf.Write(n[:])
		buf.WriteString(r.Name)
	}
	return buf.Bytes()
}

// DellTimestamp 测试快照时间，2010-10-31T19:31:33.623Z
const DellTimestamp int64 = 1288553493623

// DellStream 仅含 00-21-9b "Dell Inc" 一条记录的流
func DellStream() []byte {
	return Stream(time.UnixMilli(DellTimestamp), Record{ID: [3]byte{0x00, 0x21, 0x9b}, Name: "Dell Inc"})
}

// WriteFile 将流写入 t.TempDir() 下的文件并返回路径
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := writeFile(path, data); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
