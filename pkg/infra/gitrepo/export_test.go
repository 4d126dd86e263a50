package gitrepo

var AuthForTest = (*Client).auth
