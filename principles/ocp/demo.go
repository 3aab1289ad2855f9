package ocp

import (
	"context"
	"fmt"
	"io"

	"gosolid/cache"
	"gosolid/logging"
)

// Title 演示标题
const Title = "Open-Closed Principle"

// Run 输出开闭原则的固定演示
func Run(ctx context.Context, w io.Writer) error {
	logger := logging.ComponentLogger("ocp")
	fmt.Fprintln(w, Title)

	all := Catalogue()
	bf := NewCachedFilter[Product](BetterFilter[Product]{}, cache.Config{MaxSize: 16})

	green := ColorSpecification{Color: Green}
	blue := ColorSpecification{Color: Blue}
	for _, item := range bf.Filter(all, green) {
		fmt.Fprintf(w, "%s is Green, Voila\n", item.Name)
	}
	for _, item := range bf.Filter(all, blue) {
		fmt.Fprintf(w, "%s is Blue, Magic!!\n", item.Name)
	}

	large := SizeSpecification{Size: Large}
	for _, item := range bf.Filter(all, large) {
		fmt.Fprintf(w, "%s is Large, pretty cool hum?\n", item.Name)
	}

	// 新需求只需组合出新的 Specification
	greenAndLarge := And[Product](green, large)
	for _, item := range bf.Filter(all, greenAndLarge) {
		fmt.Fprintf(w, "%s SMASH!!!!\n", item.Name)
	}

	logger.Debug(ctx, "filter demo finished",
		logging.Int("products", len(all)),
		logging.String("cache", bf.String()))
	return nil
}
