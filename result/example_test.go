package result_test

import (
	"fmt"
	"strconv"

	"github.com/charmingruby/curry/fp"
	"github.com/charmingruby/curry/result"
)

func ExampleFlatMap() {
	sumAll, _ := fp.PipeAny.Compose(fp.ReduceFrom(fp.Add[int], 0))

	parse := func(fields []string) result.Result[[]int] {
		nums := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return result.Err[[]int](err)
			}
			nums = append(nums, n)
		}
		return result.Ok(nums)
	}
	run := func(fields ...string) result.Result[any] {
		return result.FlatMap(parse(fields), func(nums []int) result.Result[any] {
			return sumAll.Result(nums)
		})
	}

	fmt.Println(run("1", "2", "3").UnwrapOr("?"))
	fmt.Println(run("1", "two").Err())
	// Output:
	// 6
	// strconv.Atoi: parsing "two": invalid syntax
}
