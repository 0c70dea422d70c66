package macpaint_test

import (
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/macpaint"
)

var _ = Describe("MacBinary", func() {
	modified := time.Date(1985, time.March, 1, 9, 30, 0, 0, time.UTC)

	It("wraps and unwraps a document", func() {
		payload := blankDocument()
		wrapped, err := macpaint.WrapMacBinary(payload, macpaint.MacBinaryInfo{
			Name:     "Moon Landing",
			Created:  modified,
			Modified: modified,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(len(wrapped) % 128).To(Equal(0))
		Expect(len(wrapped)).To(BeNumerically(">=", 128+len(payload)))

		got, info, ok := macpaint.UnwrapMacBinary(wrapped)
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(payload))
		Expect(info.Name).To(Equal("Moon Landing"))
		Expect(info.Type).To(Equal("PNTG"))
		Expect(info.Creator).To(Equal("MPNT"))
		Expect(info.Modified.Equal(modified)).To(BeTrue())
		Expect(info.Created.Equal(modified)).To(BeTrue())
	})

	It("lays out a MacBinary II header", func() {
		wrapped, err := macpaint.WrapMacBinary([]byte{1, 2, 3}, macpaint.MacBinaryInfo{Name: "A"})
		Expect(err).NotTo(HaveOccurred())
		Expect(wrapped).To(HaveLen(256))
		Expect(wrapped[0]).To(Equal(byte(0)))
		Expect(wrapped[1]).To(Equal(byte(1)))
		Expect(wrapped[2]).To(Equal(byte('A')))
		Expect(string(wrapped[65:73])).To(Equal("PNTGMPNT"))
		Expect(wrapped[83:87]).To(Equal([]byte{0, 0, 0, 3}))
		Expect(wrapped[122]).To(Equal(byte(129)))
		Expect(wrapped[123]).To(Equal(byte(129)))
		Expect(wrapped[128:131]).To(Equal([]byte{1, 2, 3}))
	})

	It("stores names in Mac OS Roman", func() {
		wrapped, err := macpaint.WrapMacBinary(nil, macpaint.MacBinaryInfo{Name: "Café"})
		Expect(err).NotTo(HaveOccurred())
		Expect(wrapped[1]).To(Equal(byte(4)))
		Expect(wrapped[5]).To(Equal(byte(0x8e)))
		_, info, ok := macpaint.UnwrapMacBinary(wrapped)
		Expect(ok).To(BeTrue())
		Expect(info.Name).To(Equal("Café"))
	})

	It("truncates long names", func() {
		wrapped, err := macpaint.WrapMacBinary(nil, macpaint.MacBinaryInfo{Name: strings.Repeat("x", 100)})
		Expect(err).NotTo(HaveOccurred())
		_, info, ok := macpaint.UnwrapMacBinary(wrapped)
		Expect(ok).To(BeTrue())
		Expect(info.Name).To(HaveLen(63))
	})

	It("needs a name", func() {
		_, err := macpaint.WrapMacBinary(nil, macpaint.MacBinaryInfo{})
		Expect(errors.Is(err, macpaint.ErrNotMacBinary)).To(BeTrue())
	})

	It("needs four-byte codes", func() {
		_, err := macpaint.WrapMacBinary(nil, macpaint.MacBinaryInfo{Name: "A", Type: "PICT2"})
		Expect(errors.Is(err, macpaint.ErrNotMacBinary)).To(BeTrue())
	})

	It("leaves bare documents alone", func() {
		data := blankDocument()
		got, info, ok := macpaint.UnwrapMacBinary(data)
		Expect(ok).To(BeFalse())
		Expect(info).To(BeNil())
		Expect(got).To(HaveLen(len(data)))
	})

	It("accepts a damaged checksum on a MacPaint file", func() {
		wrapped, err := macpaint.WrapMacBinary(blankDocument(), macpaint.MacBinaryInfo{Name: "A"})
		Expect(err).NotTo(HaveOccurred())
		wrapped[124] ^= 0xff
		_, _, ok := macpaint.UnwrapMacBinary(wrapped)
		Expect(ok).To(BeTrue())
	})

	It("rejects a damaged checksum on anything else", func() {
		wrapped, err := macpaint.WrapMacBinary(blankDocument(), macpaint.MacBinaryInfo{Name: "A", Type: "TEXT"})
		Expect(err).NotTo(HaveOccurred())
		_, _, ok := macpaint.UnwrapMacBinary(wrapped)
		Expect(ok).To(BeTrue())
		wrapped[124] ^= 0xff
		_, _, ok = macpaint.UnwrapMacBinary(wrapped)
		Expect(ok).To(BeFalse())
	})

	It("rejects a data fork longer than the file", func() {
		wrapped, err := macpaint.WrapMacBinary(blankDocument(), macpaint.MacBinaryInfo{Name: "A"})
		Expect(err).NotTo(HaveOccurred())
		_, _, ok := macpaint.UnwrapMacBinary(wrapped[:1000])
		Expect(ok).To(BeFalse())
	})
})
