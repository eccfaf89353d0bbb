package noticeboard_test

import (
	"strconv"

	"github.com/aarondl/null/v8"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/noticeboard-go"
)

func newNotice(id int, title, content string, pin int) noticeboard.Notice {
	return noticeboard.Notice{
		ID:      strconv.Itoa(id),
		Title:   title,
		Content: content,
		Pin:     pin,
	}
}

func ids(notices []noticeboard.Notice) []string {
	out := make([]string, 0, len(notices))
	for _, n := range notices {
		out = append(out, n.ID)
	}
	return out
}

var _ = Describe("Filter", func() {
	var notices []noticeboard.Notice

	BeforeEach(func() {
		notices = []noticeboard.Notice{
			newNotice(1, "Midterm exam schedule", "Rooms are posted", 0),
			newNotice(2, "Library hours", "Closed during the exam week", 1),
			newNotice(3, "Exam results", "Check the portal", 0),
			newNotice(4, "Cafeteria menu", "Kimchi stew on Friday", 0),
			newNotice(5, "시험 안내", "기말고사 일정", 0),
		}
	})

	It("returns the full set unchanged for an empty keyword", func() {
		filtered := noticeboard.Filter(notices, "")

		Expect(filtered).To(Equal(notices))
	})

	It("matches the keyword in the title or the content", func() {
		filtered := noticeboard.Filter(notices, "exam")

		Expect(ids(filtered)).To(Equal([]string{"1", "2"}))
	})

	It("is case-sensitive", func() {
		filtered := noticeboard.Filter(notices, "Exam")

		Expect(ids(filtered)).To(Equal([]string{"3"}))
	})

	It("matches non-ASCII keywords as plain substrings", func() {
		Expect(ids(noticeboard.Filter(notices, "시험"))).To(Equal([]string{"5"}))
		Expect(ids(noticeboard.Filter(notices, "고사"))).To(Equal([]string{"5"}))
	})

	It("returns an empty, non-nil result when nothing matches", func() {
		filtered := noticeboard.Filter(notices, "foo")

		Expect(filtered).ToNot(BeNil())
		Expect(filtered).To(BeEmpty())
	})

	It("only returns members of the input, each satisfying the match", func() {
		for _, keyword := range []string{"e", "xam", "Friday", " ", "hours"} {
			filtered := noticeboard.Filter(notices, keyword)
			for _, n := range filtered {
				Expect(notices).To(ContainElement(n))
				Expect(n.Title + "\x00" + n.Content).To(ContainSubstring(keyword))
			}
		}
	})

	It("does not modify the input", func() {
		before := append([]noticeboard.Notice(nil), notices...)
		noticeboard.Filter(notices, "exam")

		Expect(notices).To(Equal(before))
	})
})

var _ = Describe("Notice", func() {
	It("falls back to the default writer when none is set", func() {
		n := newNotice(1, "t", "c", 0)
		Expect(n.Author()).To(Equal(noticeboard.DefaultWriter))

		n.Writer = null.StringFrom("")
		Expect(n.Author()).To(Equal(noticeboard.DefaultWriter))

		n.Writer = null.StringFrom("Ms. Kim")
		Expect(n.Author()).To(Equal("Ms. Kim"))
	})

	It("only treats the pinned sentinel as pinned", func() {
		Expect(newNotice(1, "t", "c", noticeboard.PinnedFlag).IsPinned()).To(BeTrue())
		Expect(newNotice(1, "t", "c", 0).IsPinned()).To(BeFalse())
		Expect(newNotice(1, "t", "c", 2).IsPinned()).To(BeFalse())
		Expect(newNotice(1, "t", "c", -1).IsPinned()).To(BeFalse())
	})
})
