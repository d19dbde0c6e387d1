// Command minbench benchmarks parallel work-distribution strategies on an
// element-wise minimum workload.
package main

import "yqhp/minbench/cmd"

func main() {
	cmd.Execute()
}
