package config

var GitHostsForTest = (*GitHub).gitHosts
