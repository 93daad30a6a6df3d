package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/recorddb/bootstrap"
	"github.com/fulldump/recorddb/configuration"
)

var banner = `
 _____                        _ ____________
| ___ \                      | |  _  \ ___ \
| |_/ /___  ___ ___  _ __ __| | | | | |_/ /
|    // _ \/ __/ _ \| '__/ _' | | | | ___ \
| |\ \  __/ (_| (_) | | | (_| | |/ /| |_/ /
\_| \_\___|\___\___/|_|  \__,_|___/ \____/
                    version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _, err := bootstrap.Bootstrap(&c)
	if err != nil {
		fmt.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	start()
}
