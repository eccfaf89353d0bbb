package noticeboard_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/noticeboard-go"
)

func markers[T any](rows []noticeboard.Row[T]) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Marker.String())
	}
	return out
}

var _ = Describe("Compose", func() {
	It("places pinned items first with the pin marker", func() {
		rows := noticeboard.Compose([]string{"p1", "p2"}, []string{"a", "b"}, 0)

		Expect(noticeboard.Nodes(rows)).To(Equal([]string{"p1", "p2", "a", "b"}))
		Expect(rows[0].Marker.Pinned).To(BeTrue())
		Expect(rows[1].Marker.Pinned).To(BeTrue())
		Expect(markers(rows)).To(Equal([]string{"📌", "📌", "1", "2"}))
	})

	It("numbers unpinned items from firstIndex + 1", func() {
		rows := noticeboard.Compose([]string{"p1", "p2"}, []string{"k", "l"}, 10)

		Expect(markers(rows)).To(Equal([]string{"📌", "📌", "11", "12"}))
		Expect(rows[2].Marker).To(Equal(noticeboard.Marker{Index: 11}))
		Expect(rows[3].Marker).To(Equal(noticeboard.Marker{Index: 12}))
	})

	It("numbers without pinned items", func() {
		rows := noticeboard.Compose(nil, []string{"a", "b", "c"}, 20)

		Expect(markers(rows)).To(Equal([]string{"21", "22", "23"}))
	})

	It("renders only pinned items when the slice is empty", func() {
		rows := noticeboard.Compose([]string{"p1"}, nil, 30)

		Expect(markers(rows)).To(Equal([]string{"📌"}))
	})

	It("returns an empty list when both inputs are empty", func() {
		rows := noticeboard.Compose[string](nil, nil, 0)

		Expect(rows).ToNot(BeNil())
		Expect(rows).To(BeEmpty())
	})

	It("matches the index formula at every combined position", func() {
		pinned := []int{100, 101, 102}
		slice := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		firstIndex := 40

		rows := noticeboard.Compose(pinned, slice, firstIndex)

		Expect(rows).To(HaveLen(len(pinned) + len(slice)))
		for i, r := range rows {
			if i < len(pinned) {
				Expect(r.Marker.Pinned).To(BeTrue())
				continue
			}
			Expect(r.Marker.Pinned).To(BeFalse())
			Expect(r.Marker.Index).To(Equal(firstIndex + (i - len(pinned)) + 1))
		}
	})
})
