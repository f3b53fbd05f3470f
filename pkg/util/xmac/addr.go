package xmac

import (
	"bytes"
	"fmt"
	"net"
)

// Len 是 MAC 地址的字节数。
const Len = 6

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//   - 零值即 00:00:00:00:00:00，是合法地址
//
// 使用 [Parse]、[FromRaw] 或 [AddrFrom6] 创建：
//
//	addr, err := xmac.Parse("00:21:9b:07:20:74")
//	addr, err := xmac.FromRaw(buf)
type Addr struct {
	bytes [Len]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [Len]byte) Addr {
	return Addr{bytes: b}
}

// FromRaw 从字节切片创建 MAC 地址。
// 切片长度必须为 6，否则返回 [ErrInvalidLength]，错误信息包含实际长度。
// 结果持有 b 的副本，之后修改 b 不影响返回的地址。
func FromRaw(b []byte) (Addr, error) {
	if len(b) != Len {
		return Addr{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, Len, len(b))
	}
	var a Addr
	copy(a.bytes[:], b)
	return a, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址。
// 仅接受 6 字节地址（EUI-64 等其他长度返回 [ErrInvalidLength]）。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return FromRaw(hw)
}

// Bytes 返回 6 字节的新切片，由调用方持有。
// 修改返回值不影响 a。
func (a Addr) Bytes() []byte {
	b := make([]byte, Len)
	copy(b, a.bytes[:])
	return b
}

// Array 返回地址的数组表示（值拷贝）。
func (a Addr) Array() [Len]byte {
	return a.bytes
}

// HardwareAddr 返回 [net.HardwareAddr] 表示（新分配）。
func (a Addr) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(a.Bytes())
}

// Compare 按字节字典序比较两个地址。
// 返回 -1 (a < b)、0 (a == b) 或 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	return bytes.Compare(a.bytes[:], b.bytes[:])
}

// OUI 返回组织唯一标识符（前 3 字节），由 IEEE 分配给制造商。
func (a Addr) OUI() [3]byte {
	return [3]byte{a.bytes[0], a.bytes[1], a.bytes[2]}
}

// NIC 返回由制造商分配的后 3 字节。
func (a Addr) NIC() [3]byte {
	return [3]byte{a.bytes[3], a.bytes[4], a.bytes[5]}
}
