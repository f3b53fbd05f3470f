package xmac

// 第一字节中的标志位。
const (
	// FlagMulticast 多播位（bit 0）。
	FlagMulticast byte = 0x01
	// FlagLocal 本地管理位（bit 1）。
	FlagLocal byte = 0x02
)

// IsMulticast 报告 a 是否设置了多播位。广播地址也是多播地址。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&FlagMulticast != 0
}

// IsUnicast 报告 a 是否为单播地址（多播位为 0）。
func (a Addr) IsUnicast() bool {
	return !a.IsMulticast()
}

// IsLocal 报告 a 是否设置了本地管理位（LAA）。
// 虚拟机、容器和随机化 MAC 通常是 LAA，其前 3 字节不是 IEEE 分配的 OUI。
func (a Addr) IsLocal() bool {
	return a.bytes[0]&FlagLocal != 0
}

// IsUniversal 报告 a 是否为全球唯一地址（UAA，本地管理位为 0）。
func (a Addr) IsUniversal() bool {
	return !a.IsLocal()
}

// IsBroadcast 报告 a 是否为 ff:ff:ff:ff:ff:ff。
func (a Addr) IsBroadcast() bool {
	return a.bytes == [Len]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
}

// IsZero 报告 a 是否为 00:00:00:00:00:00。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// WithoutFlags 返回清除多播位与本地管理位后的地址。
func (a Addr) WithoutFlags() Addr {
	a.bytes[0] &^= FlagMulticast | FlagLocal
	return a
}
