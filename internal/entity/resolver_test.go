package entity_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Prosono/HomeGPT/internal/entity"
	"github.com/Prosono/HomeGPT/internal/model"
)

type mockFetcher struct {
	fetchFn func(ctx context.Context) (map[string]string, error)
	calls   int
}

func (m *mockFetcher) FetchEntityDevices(ctx context.Context) (map[string]string, error) {
	m.calls++
	if m.fetchFn != nil {
		return m.fetchFn(ctx)
	}
	return map[string]string{}, nil
}

var _ = Describe("Annotate", func() {
	var resolver *entity.Resolver

	BeforeEach(func() {
		resolver = entity.NewResolver(entity.NewRegistryCache())
	})

	It("routes sensor tokens to the history view", func() {
		decorated, refs := resolver.Annotate("Reading from sensor.kitchen_temp is high")
		Expect(refs).To(HaveLen(1))
		Expect(refs[0].Domain).To(Equal("sensor"))
		Expect(refs[0].RawToken).To(Equal("sensor.kitchen_temp"))
		Expect(refs[0].Target).To(HavePrefix("/history?entity_id="))
		Expect(decorated).To(ContainSubstring(`data-domain="sensor"`))
	})

	It("routes non-sensor domains to the management view", func() {
		_, refs := resolver.Annotate("Check light.living_room now")
		Expect(refs).To(HaveLen(1))
		Expect(refs[0].Target).To(HavePrefix("/config/entities/edit/"))
	})

	It("resolves multiple tokens in order", func() {
		_, refs := resolver.Annotate("sensor.a then switch.b then climate.c-2")
		Expect(refs).To(HaveLen(3))
		Expect(refs[0].RawToken).To(Equal("sensor.a"))
		Expect(refs[1].RawToken).To(Equal("switch.b"))
		Expect(refs[2].RawToken).To(Equal("climate.c-2"))
	})

	It("escapes surrounding text", func() {
		decorated, _ := resolver.Annotate(`<script> & sensor.x`)
		Expect(decorated).NotTo(ContainSubstring("<script>"))
		Expect(decorated).To(ContainSubstring("&lt;script&gt;"))
		Expect(decorated).To(ContainSubstring("&amp;"))
	})

	It("returns escaped text unchanged when no tokens exist", func() {
		decorated, refs := resolver.Annotate("nothing to see here")
		Expect(refs).To(BeEmpty())
		Expect(decorated).To(Equal("nothing to see here"))
	})

	It("keeps anchors inert", func() {
		decorated, _ := resolver.Annotate("sensor.kitchen_temp")
		Expect(strings.Count(decorated, "<a ")).To(Equal(1))
		Expect(decorated).To(ContainSubstring(`</a>`))
	})
})

var _ = Describe("Chips", func() {
	var (
		cache    *entity.RegistryCache
		resolver *entity.Resolver
	)

	BeforeEach(func() {
		cache = entity.NewRegistryCache()
		resolver = entity.NewResolver(cache)
	})

	It("emits nothing without identifiers", func() {
		Expect(resolver.Chips(nil, nil)).To(BeEmpty())
	})

	It("emits one edit-entity and one manage-device chip", func() {
		chips := resolver.Chips(
			[]string{"light.living_room", "light.kitchen"},
			[]string{"device-1", "device-2"},
		)
		Expect(chips).To(HaveLen(2))
		Expect(chips[0].Kind).To(Equal(model.ChipEditEntity))
		Expect(chips[0].EntityID).To(Equal("light.living_room"))
		Expect(chips[1].Kind).To(Equal(model.ChipManageDevice))
		Expect(chips[1].DeviceID).To(Equal("device-1"))
		Expect(chips[1].Pending).To(BeFalse())
	})

	It("deduplicates identifier lists", func() {
		chips := resolver.Chips([]string{"light.a", "light.a"}, []string{"d1", "d1"})
		Expect(chips).To(HaveLen(2))
	})

	It("resolves the device through the cache when none is supplied", func() {
		cache.Upsert("light.a", "device-9")
		chips := resolver.Chips([]string{"light.a"}, nil)
		Expect(chips).To(HaveLen(2))
		Expect(chips[1].DeviceID).To(Equal("device-9"))
		Expect(chips[1].Pending).To(BeFalse())
	})

	It("emits a pending placeholder when the device is unknown", func() {
		chips := resolver.Chips([]string{"light.a"}, nil)
		Expect(chips).To(HaveLen(2))
		Expect(chips[1].Kind).To(Equal(model.ChipManageDevice))
		Expect(chips[1].EntityID).To(Equal("light.a"))
		Expect(chips[1].Pending).To(BeTrue())
	})
})

var _ = Describe("RegistryCache", func() {
	var cache *entity.RegistryCache

	BeforeEach(func() {
		cache = entity.NewRegistryCache()
	})

	It("is first-write-wins", func() {
		cache.Upsert("light.a", "device-1")
		cache.Upsert("light.a", "device-2")
		deviceID, ok := cache.Get("light.a")
		Expect(ok).To(BeTrue())
		Expect(deviceID).To(Equal("device-1"))
	})

	It("populates at most once per process lifetime", func() {
		fetcher := &mockFetcher{fetchFn: func(ctx context.Context) (map[string]string, error) {
			return map[string]string{"light.a": "device-1"}, nil
		}}
		Expect(cache.EnsurePopulated(context.Background(), fetcher)).To(Succeed())
		Expect(cache.EnsurePopulated(context.Background(), fetcher)).To(Succeed())
		Expect(fetcher.calls).To(Equal(1))
	})

	It("does not retry a failed fetch until cleared", func() {
		fetcher := &mockFetcher{fetchFn: func(ctx context.Context) (map[string]string, error) {
			return nil, errors.New("registry offline")
		}}
		Expect(cache.EnsurePopulated(context.Background(), fetcher)).To(HaveOccurred())
		Expect(cache.EnsurePopulated(context.Background(), fetcher)).To(Succeed())
		Expect(fetcher.calls).To(Equal(1))

		cache.Clear()
		Expect(cache.EnsurePopulated(context.Background(), fetcher)).To(HaveOccurred())
		Expect(fetcher.calls).To(Equal(2))
	})

	It("clears entries", func() {
		cache.Upsert("light.a", "device-1")
		cache.Clear()
		_, ok := cache.Get("light.a")
		Expect(ok).To(BeFalse())
	})
})
